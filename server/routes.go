package server

func (s *Server) initRoutes() {
	// Every method reaches the callback so non-browser callers get a JSON answer.
	s.RegisterRouteHandler(RouteCallback, ChainMiddleware(s.CallbackHandler(), s.HTMLMiddleWare()...))

	s.RegisterRouteHandler("GET "+RouteAuthorize, ChainMiddleware(s.AuthorizeHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.HTMLMiddleWare(s.CacheMiddleware, s.CompressionMiddleware)...))
}
