// Package logger provides structured logging on top of zerolog.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "puzzle").WithComponent("httpclient")
//	log.Debug("request completed", logger.Fields("status", 200))
package logger
