package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-booking-api/models"
	"hotel-booking-api/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_booking")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.RoomType{},
		&models.Amenity{},
		&models.RoomAmenity{},
		&models.RoomImage{},
		&models.Room{},
		&models.Booking{},
		&models.Review{},
		&models.ContactMessage{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase is idempotent: it only inserts when the tables are empty.
func SeedDatabase() {
	var staffCount int64
	DB.Model(&models.User{}).Where("is_staff = ?", true).Count(&staffCount)
	if staffCount == 0 {
		password := utils.EnvOrDefault("SEED_STAFF_PASSWORD", "staff123")
		hash, err := utils.HashPassword(password)
		if err != nil {
			log.Printf("warning: failed to hash seed staff password: %v", err)
		} else {
			staff := models.User{
				Username:  "staff@hotel.local",
				Email:     "staff@hotel.local",
				Password:  hash,
				FirstName: "Hotel",
				LastName:  "Staff",
				IsStaff:   true,
			}
			if err := DB.Create(&staff).Error; err != nil {
				log.Printf("warning: failed to create default staff user: %v", err)
			} else {
				log.Println("Default staff user seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", Description: "Standard Room", PricePerNightCents: 8000},
			{Name: "Superior", Description: "Superior Room", PricePerNightCents: 12000},
			{Name: "Deluxe", Description: "Deluxe Room", PricePerNightCents: 18000},
			{Name: "Suite", Description: "Suite with separate living area", PricePerNightCents: 30000},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("Room types seeded")
		}
	}

	var amenityCount int64
	DB.Model(&models.Amenity{}).Count(&amenityCount)
	if amenityCount == 0 {
		amenities := []models.Amenity{
			{Name: "WiFi", Description: "Free wireless internet", Icon: "wifi"},
			{Name: "Air Conditioning", Description: "Individually controlled", Icon: "thermometer-snow"},
			{Name: "Breakfast", Description: "Buffet breakfast included", Icon: "cup-hot"},
			{Name: "Minibar", Description: "Stocked minibar", Icon: "cup-straw"},
		}
		if err := DB.Create(&amenities).Error; err != nil {
			log.Printf("warning: failed to seed amenities: %v", err)
		} else {
			log.Println("Amenities seeded")
		}
	}
}
