package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the server reads from the environment. It is
// loaded once in main and handed to the packages that need it.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	SenderEmail string
	AdminEmail  string

	UploadDir     string
	AllowedOrigin string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() *Config {
	c := &Config{
		Port: getenv("PORT", "8080"),

		DBUser:     getenv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBName:     getenv("DB_NAME", "nanghali_loans"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: 465,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		SenderEmail: getenv("SMTP_SENDER", "noreply@nanghaliyakafita.com"),
		AdminEmail:  getenv("ADMIN_EMAIL", "lk2017015453@gmail.com"),

		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "https://nanghaliyakafita.com"),
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SMTPPort = n
		}
	}

	return c
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
