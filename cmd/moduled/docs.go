package main

// General API documentation for swaggo. The served document lives in
// internal/httpapi/swagger.go.
//
// @title           moduled API
// @version         1.0
// @description     HTTP API for switching the current engine module.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
