// Package app provides the application context for sandbox-ctl.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
//	type App struct {
//	    Paths     *config.Paths    // File system paths
//	    Config    *config.Config   // User configuration
//	    Service   create.Service   // Sandbox API
//	    Navigator create.Navigator // Where to send the user after creation
//	    Out       io.Writer        // User-facing output
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New(app.WithConfig(cfg))
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithService(fakeService),
//	    app.WithNavigator(&navigate.Recorder{}),
//	)
package app
