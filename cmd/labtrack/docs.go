package main

// @title LabTrack API
// @version 1.0
// @description Electronic component inventory dashboard API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/labtrack/labtrack

// @license.name MIT
// @license.url https://github.com/labtrack/labtrack/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Components
// @tag.description Inventory component endpoints

// @tag.name Dashboard
// @tag.description Dashboard summary endpoints

// @tag.name Activity
// @tag.description Activity log and movement chart endpoints

// @tag.name Auth
// @tag.description Session endpoints

// @tag.name Users
// @tag.description User directory endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
