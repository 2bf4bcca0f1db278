package routes

import (
	"net/http"

	"vesture/auth"
	"vesture/closet"
	"vesture/filemgr"
	"vesture/middleware"
	"vesture/notifications"
	"vesture/ootd"
	"vesture/products"
	"vesture/profile"
	"vesture/ratelim"
	"vesture/wishlist"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/users", rl.Limit(auth.Register))

	// httprouter refuses static segments next to the :id wildcard the
	// follow routes need, so login/logout dispatch off the same param.
	loginHandler := rl.Limit(auth.Login)
	logoutHandler := middleware.Authenticate(auth.LogoutUser)
	router.POST("/api/users/:id", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		switch ps.ByName("id") {
		case "login":
			loginHandler(w, r, ps)
		case "logout":
			logoutHandler(w, r, ps)
		default:
			http.NotFound(w, r)
		}
	})
}

func AddProfileRoutes(router *httprouter.Router) {
	router.GET("/api/users/:id", middleware.OptionalAuth(profile.GetUser))
	router.PUT("/api/users/:id", middleware.Authenticate(profile.UpdateUser))
	router.DELETE("/api/users/:id", middleware.Authenticate(profile.DeleteUser))

	router.POST("/api/users/:id/follow", middleware.Authenticate(profile.ToggleFollow))
	router.POST("/api/users/:id/unfollow", middleware.Authenticate(profile.ToggleUnFollow))
	router.GET("/api/users/:id/followers", profile.GetFollowers)
	router.GET("/api/users/:id/following", profile.GetFollowing)
	router.GET("/api/users/:id/qr", profile.ShareQR)
}

func AddClosetRoutes(router *httprouter.Router) {
	router.POST("/api/closet-items", middleware.Authenticate(closet.CreateClosetItem))
	router.GET("/api/closet-items", middleware.OptionalAuth(closet.GetClosetItems))
	router.GET("/api/closet/export", middleware.Authenticate(closet.ExportLookbook))
	router.GET("/api/closet-items/:id", closet.GetClosetItem)
	router.PUT("/api/closet-items/:id", middleware.Authenticate(closet.UpdateClosetItem))
	router.DELETE("/api/closet-items/:id", middleware.Authenticate(closet.DeleteClosetItem))
}

func AddOOTDRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/ootd-posts", rl.Limit(middleware.Authenticate(ootd.CreatePost)))
	router.GET("/api/ootd-posts", ootd.GetPosts)
	router.GET("/api/ootd-posts/:id", ootd.GetPost)
	router.PUT("/api/ootd-posts/:id", middleware.Authenticate(ootd.UpdatePost))
	router.DELETE("/api/ootd-posts/:id", middleware.Authenticate(ootd.DeletePost))

	router.POST("/api/ootd-posts/:id/like", middleware.Authenticate(ootd.LikePost))
	router.POST("/api/ootd-posts/:id/unlike", middleware.Authenticate(ootd.UnlikePost))
	router.POST("/api/ootd-posts/:id/save", middleware.Authenticate(ootd.SavePost))
	router.POST("/api/ootd-posts/:id/unsave", middleware.Authenticate(ootd.UnsavePost))
	router.POST("/api/ootd-posts/:id/comment", middleware.Authenticate(ootd.CommentPost))
	router.GET("/api/ootd-posts/:id/counts", ootd.GetCounts)
}

func AddWishlistRoutes(router *httprouter.Router) {
	router.POST("/api/wishlist-items", middleware.Authenticate(wishlist.AddItem))
	router.GET("/api/wishlist-items", middleware.Authenticate(wishlist.GetItems))
	router.GET("/api/wishlist-items/:id", middleware.Authenticate(wishlist.GetItem))
	router.DELETE("/api/wishlist-items/:id", middleware.Authenticate(wishlist.DeleteItem))
}

func AddNotificationRoutes(router *httprouter.Router) {
	router.GET("/api/notifications", middleware.Authenticate(notifications.GetNotifications))
	router.GET("/api/notifications/stream", notifications.Stream)
	router.PUT("/api/notifications", middleware.Authenticate(notifications.MarkAllRead))
	router.PUT("/api/notifications/:id/read", middleware.Authenticate(notifications.MarkRead))
	router.DELETE("/api/notifications/:id", middleware.Authenticate(notifications.DeleteNotification))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/products", middleware.Authenticate(products.CreateProduct))
	router.GET("/api/products", products.GetProducts)
	router.POST("/api/products/upsert", rl.Limit(middleware.Authenticate(products.Upsert)))
	router.POST("/api/products/recognize", rl.Limit(middleware.Authenticate(products.Recognize)))
	router.GET("/api/products/:id", products.GetProduct)
	router.PUT("/api/products/:id", middleware.Authenticate(products.UpdateProduct))
	router.DELETE("/api/products/:id", middleware.Authenticate(products.DeleteProduct))
}

func AddUploadRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/uploads", rl.Limit(middleware.Authenticate(filemgr.UploadImage)))
}
