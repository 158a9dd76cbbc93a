/*
The middleware package defines what a middleware is in conneg and a set of basic middlewares.

The available middlewares are:
- Compress
- CORS
- ForceHTTPS
- InjectIPAddress
- LogRequest
- Negotiated
- RateLimit
- ReportPanic
- RequestID
- Vary

Due to the amount of configuration required, middleware does not provide a default middleware chain
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors(5, 20)
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.CORS(origin),
		middleware.Compress(),
		middleware.Negotiated(),
	}
*/
package middleware
