package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"coursehub/internal/auth"
	"coursehub/internal/config"
	"coursehub/internal/db"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

// Seed fixtures installed on a fresh database. The admin account credentials
// come from the environment so no default password ships in the binary.
var (
	roleNames = []string{model.RoleAdmin, model.RoleInstructor, model.RoleStudent}

	faculties = []model.Faculty{
		{Name: "Computer Science"},
		{Name: "Mathematics"},
	}

	groups = []model.Group{
		{Name: "CS-101"},
		{Name: "CS-102"},
		{Name: "MATH-201"},
	}

	courses = []model.Course{
		{Name: "Algorithms", Description: "Design and analysis of algorithms"},
		{Name: "Databases", Description: "Relational modeling and SQL"},
		{Name: "Linear Algebra", Description: "Vector spaces and matrices"},
	}
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Faculty{},
		&model.Group{},
		&model.Course{},
		&model.Enrollment{},
		&model.Lesson{},
		&model.Grade{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	facultyRepo := repository.NewFacultyRepository(gormDB)
	groupRepo := repository.NewGroupRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)

	roles := make(map[string]*model.Role, len(roleNames))
	for _, name := range roleNames {
		role, err := roleRepo.FindByName(ctx, name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = &model.Role{Name: name}
			if err := roleRepo.Create(ctx, role); err != nil {
				log.Fatalf("Failed to seed role %q: %v", name, err)
			}
			log.Printf("Seeded role %q", name)
		} else if err != nil {
			log.Fatalf("Failed to check role %q: %v", name, err)
		}
		roles[name] = role
	}

	for i := range faculties {
		if _, err := facultyRepo.FindByName(ctx, faculties[i].Name); errors.Is(err, gorm.ErrRecordNotFound) {
			if err := facultyRepo.Create(ctx, &faculties[i]); err != nil {
				log.Fatalf("Failed to seed faculty %q: %v", faculties[i].Name, err)
			}
			log.Printf("Seeded faculty %q", faculties[i].Name)
		} else if err != nil {
			log.Fatalf("Failed to check faculty %q: %v", faculties[i].Name, err)
		}
	}

	// Groups split across the two faculties: CS groups on the first,
	// the math group on the second.
	csFaculty, err := facultyRepo.FindByName(ctx, "Computer Science")
	if err != nil {
		log.Fatalf("Failed to load faculty: %v", err)
	}
	mathFaculty, err := facultyRepo.FindByName(ctx, "Mathematics")
	if err != nil {
		log.Fatalf("Failed to load faculty: %v", err)
	}
	groups[0].FacultyID = csFaculty.ID
	groups[1].FacultyID = csFaculty.ID
	groups[2].FacultyID = mathFaculty.ID

	for i := range groups {
		if _, err := groupRepo.FindByName(ctx, groups[i].Name); errors.Is(err, gorm.ErrRecordNotFound) {
			if err := groupRepo.Create(ctx, &groups[i]); err != nil {
				log.Fatalf("Failed to seed group %q: %v", groups[i].Name, err)
			}
			log.Printf("Seeded group %q", groups[i].Name)
		} else if err != nil {
			log.Fatalf("Failed to check group %q: %v", groups[i].Name, err)
		}
	}

	for i := range courses {
		if _, err := courseRepo.FindByName(ctx, courses[i].Name); errors.Is(err, gorm.ErrRecordNotFound) {
			if err := courseRepo.Create(ctx, &courses[i]); err != nil {
				log.Fatalf("Failed to seed course %q: %v", courses[i].Name, err)
			}
			log.Printf("Seeded course %q", courses[i].Name)
		} else if err != nil {
			log.Fatalf("Failed to check course %q: %v", courses[i].Name, err)
		}
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		log.Println("Seed completed")
		return
	}

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin %q already exists", adminEmail)
		log.Println("Seed completed")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin account: %v", err)
	}

	hasher := auth.NewHasher(cfg.PasswordHashCost, cfg.TokenHashCost)
	passwordHash, err := hasher.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		FirstName:    "System",
		LastName:     "Admin",
		RoleID:       roles[model.RoleAdmin].ID,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	log.Printf("Seeded admin %q", adminEmail)
	log.Println("Seed completed")
}
