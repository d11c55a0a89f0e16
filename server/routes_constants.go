package server

import "github.com/jrsteele09/go-blog-client/authmodel"

// Route path constants
// Auth paths are shared with the client through authmodel so the two cannot drift
const (
	RouteAPIPrefix = "/api"

	// Auth Routes
	RouteAuthLogin                = RouteAPIPrefix + authmodel.LoginPath
	RouteAuthSignup               = RouteAPIPrefix + authmodel.SignupPath
	RouteAuthRefresh              = RouteAPIPrefix + authmodel.RefreshPath
	RouteAuthProfile              = RouteAPIPrefix + authmodel.ProfilePath
	RouteAuthVerifyEmail          = RouteAPIPrefix + "/auth/verify-email/{token}"
	RouteAuthResetPasswordRequest = RouteAPIPrefix + authmodel.ResetPasswordRequestPath
	RouteAuthResetPassword        = RouteAPIPrefix + "/auth/reset-password/{token}"

	// Blog Routes
	RouteBlogs          = RouteAPIPrefix + "/blogs"
	RouteBlogCategories = RouteAPIPrefix + "/blogs/categories"
	RouteBlog           = RouteAPIPrefix + "/blogs/{id}"
	RouteBlogComments   = RouteAPIPrefix + "/blogs/{id}/comments"

	// User Routes
	RouteUser = RouteAPIPrefix + "/users/{id}"

	RouteHealth = RouteAPIPrefix + "/health"
)
