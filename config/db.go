package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-reservas/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
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
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}
	// RowsAffected counts matched rows, so re-sending unchanged values is not "no rows"
	if q.Get("clientFoundRows") == "" {
		q.Set("clientFoundRows", "true")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	cfg := mysqldriver.NewConfig()
	cfg.User = EnvOrDefault("DB_USER", "root")
	cfg.Passwd = EnvOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(EnvOrDefault("DB_HOST", "127.0.0.1"), EnvOrDefault("DB_PORT", "3306"))
	cfg.DBName = EnvOrDefault("DB_NAME", "hotel_reservas")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.ClientFoundRows = true
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), cfg.DBName, nil
}

// Migrate creates or updates quarto, cliente and reserva.
func Migrate(db *gorm.DB) error {
	// parent -> child order
	if err := db.AutoMigrate(
		&models.Room{},
		&models.Customer{},
		&models.Reservation{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// ConnectDatabase opens MySQL, migrates quarto, cliente and reserva, and sets DB.
func ConnectDatabase() error {
	dsn, dbName, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		zap.NewStdLog(Logger),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	Logger.Info("database connected", zap.String("db", dbName))
	DB = db
	return nil
}
