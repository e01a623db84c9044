package database

import (
	"fmt"
	"log"

	"chef_brigade_backend/internal/config"
	"chef_brigade_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.JournalEntry{},
		&model.JournalPrompt{},
		&model.Course{},
		&model.Lesson{},
		&model.LessonProgress{},
		&model.Post{},
		&model.Comment{},
		&model.PostLike{},
		&model.Broadcast{},
		&model.Notification{},
		&model.Subscription{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the daily journal prompt list. Prompt selection indexes this list
	// by day of year, so the rows are ordered and append-only; changing the
	// list length reassigns prompts to dates.
	var count int64
	db.Model(&model.JournalPrompt{}).Count(&count)
	if count == 0 {
		defaultPrompts := []string{
			"What dish did you cook today, and what would you change next time?",
			"Describe a flavor combination you discovered recently.",
			"What kitchen skill are you working to improve this week?",
			"Write about a meal that meant something to someone you fed.",
			"What did you plate today that you were proud of?",
			"Which ingredient intimidates you, and why?",
			"What did a mistake in the kitchen teach you today?",
			"Who in your brigade inspired you this week?",
			"What technique from a course have you put into practice?",
			"How did service feel today - rushed, calm, chaotic?",
			"What would you cook if cost were no object?",
			"Describe the best bite of food you had today.",
			"What prep habit saved you time this week?",
			"Write about a recipe handed down to you.",
			"What are you grateful for in your kitchen right now?",
		}
		for _, text := range defaultPrompts {
			db.Create(&model.JournalPrompt{Text: text, Enabled: true})
		}
	}

	return db, nil
}
