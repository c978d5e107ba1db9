package main

import "github.com/init-pkg/sheet-export/internal/bootstrap"

// @title        Sheet export API
// @version      1.0
// @BasePath     /
// @securityDefinitions.apikey AdminToken
// @in           header
// @name         x-admin-token
func main() {
	bootstrap.Run()
}
