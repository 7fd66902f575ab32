package main

import (
	"os"

	_ "skills-tracker-backend/docs" // This is needed for swag
)

//	@title			Skills Tracker API
//	@version		1.0
//	@description	Backend API for tracking which skills exist, how they depend on each other and which teams know them.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
