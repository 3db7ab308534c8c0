package main

import "github.com/devops-pm/project-manager/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustInitDynamoDB()

	app.MustListenAndServeHTTP()
}
