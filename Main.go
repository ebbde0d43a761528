package main

import (
	"log"

	"Ecommerce/config"
	"Ecommerce/gateway"
	"Ecommerce/routers"
)

func main() {
	if _, err := config.JWTSecret(); err != nil {
		log.Fatal(err)
	}

	db, err := config.SetupMySQLConnection()
	if err != nil {
		log.Fatal("unable to connect to the database: ", err)
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	rdb, err := config.SetupRedisConnection()
	if err != nil {
		log.Fatal("unable to connect to redis: ", err)
	}
	defer rdb.Close()

	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	gw := gateway.NewBraintree(cfg.Braintree)

	router := routers.SetupRouters(db, rdb, gw)
	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
