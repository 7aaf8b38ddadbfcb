package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
)

func main() {
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		fmt.Println("Usage: add_user -first-name NAME -last-name NAME -email EMAIL -password PASSWORD")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  hashed,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
