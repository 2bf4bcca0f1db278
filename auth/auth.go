package auth

import (
	"net/http"

	"vesture/config"

	"github.com/julienschmidt/httprouter"
)

var cfg *config.Config

// Init hands the package its configuration. Called once from main.
func Init(c *config.Config) {
	cfg = c
}

func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	registerHandler(w, r)
}
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r)
}
func LogoutUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logoutUserHandler(w, r)
}
