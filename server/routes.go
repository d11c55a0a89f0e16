package server

import "net/http"

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteHandler("POST "+RouteAuthSignup, ChainMiddleware(s.SignupHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthRefresh, ChainMiddleware(s.RefreshHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthProfile, ChainMiddleware(s.ProfileHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteAuthVerifyEmail, ChainMiddleware(s.VerifyEmailHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthResetPasswordRequest, ChainMiddleware(s.ResetPasswordRequestHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthResetPassword, ChainMiddleware(s.ResetPasswordHandler(), s.APIMiddleware()...))

	// BLOGS
	s.RegisterRouteHandler("GET "+RouteBlogs, ChainMiddleware(s.ListBlogsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteBlogs, ChainMiddleware(s.CreateBlogHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteBlogCategories, ChainMiddleware(s.CategoriesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteBlog, ChainMiddleware(s.GetBlogHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("GET "+RouteBlogComments, ChainMiddleware(s.ListCommentsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteBlogComments, ChainMiddleware(s.AddCommentHandler(), s.APIMiddleware(s.RequireAuth())...))

	// USERS
	s.RegisterRouteHandler("GET "+RouteUser, ChainMiddleware(s.UserProfileHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	// Preflight for every API route
	s.RegisterRouteHandler("OPTIONS "+RouteAPIPrefix+"/", ChainMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, s.APIMiddleware()...))
}
