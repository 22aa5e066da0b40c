package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apra1107-crypto/erp-sub002/app/config"
	"github.com/apra1107-crypto/erp-sub002/app/database"
	"github.com/apra1107-crypto/erp-sub002/app/models"
)

func main() {
	email := flag.String("email", "", "email of the new user")
	password := flag.String("password", "", "password of the new user")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "User", "last name")
	role := flag.String("role", "admin", "role to assign")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-first-name X] [-last-name Y] [-role admin]")
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	if err := database.AssignRole(db, user.ID, *role); err != nil {
		fmt.Printf("User created but role assignment failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s) with role %s\n",
		user.FirstName, user.LastName, user.Email, *role)
}
