package main

import (
	"flag"
	"fmt"

	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/config"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/database"
	"github.com/alexgonper/ArenaJiujitsuHUB-sub001/app/models"
)

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "admin", "role name (admin, teacher, front_desk)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -password <password> [-first-name X] [-last-name Y] [-role admin]")
		return
	}

	// Initialize database connection
	config.Init()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s %s (%s) role=%s\n", user.FirstName, user.LastName, user.Email, *role)
}
