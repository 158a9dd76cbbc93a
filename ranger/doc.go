/*
Package ranger initializes and manages a conneg app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].
A [Ranger] wires together, in order:

  - a [config.Config], loaded with [config.Load] unless one is passed in with [WithConfig]
  - a [logger.Logger] at the configured level, forwarding to Sentry when a DSN is configured
  - a [template.Parser] reading templates from the working directory
  - a [*resp.Responder] negotiating with the configured format parameter, TCN flag, and override table
  - a [*renderers.Set] of stock renderers sharing the logger and parser
  - a [*router.Router] applying the default middleware stack to every request
  - an [*http.Server] listening on the configured host and port

Resources are registered through the embedded [*router.Router]:

	rng, err := ranger.New()
	if err != nil {
		log.Fatal(err)
	}

	rng.HandleResource("/articles/{id}", articles{rng})
	if err := rng.Guide(); err != nil {
		log.Fatal(err)
	}

[*Ranger.Guide] begins the web server.
Stop it with [*Ranger.Shutdown], call [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Configuration

Environment variables can be set in a file called ".env"
found at the same directory the application is executed from; it is loaded on import.
Confer package config for the available settings.
*/
package ranger
