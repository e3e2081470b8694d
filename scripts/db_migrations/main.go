package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/transactions-report/internal/config"
	"github.com/carson-networks/transactions-report/internal/storage/sqlconfig"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	preMigrationVersion, postMigrationVersion, err := sqlconfig.RunMigrations(env.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("sqlconfig.RunMigrations")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Info("Migration status")
}
