package config

import (
    "log"
    "os"
    "strconv"
    "time"
)

type Config struct {
    Env  string
    Port string

    DBHost     string
    DBPort     string
    DBUser     string
    DBPassword string
    DBName     string
    DBSSLMode  string

    JWTSecret string
    AccessTTL time.Duration

    // Disk storage for certificate files, served under /files.
    UploadDir     string
    PublicBaseURL string

    // Cloudinary takes over file storage when all three are set.
    CloudinaryCloudName string
    CloudinaryAPIKey    string
    CloudinaryAPISecret string
    CloudinaryFolder    string

    RedisAddr       string
    RateLimitPerMin int

    // Seed values for the initial admin login.
    AdminDocument string
    AdminName     string
    SeedDemo      bool
}

func Load() *Config {
    return &Config{
        Env:  getenv("APP_ENV", "dev"),
        Port: getenv("PORT", "8080"),

        DBHost:     getenv("DB_HOST", "localhost"),
        DBPort:     getenv("DB_PORT", "5432"),
        DBUser:     getenv("DB_USER", "postgres"),
        DBPassword: getenv("DB_PASSWORD", "postgres"),
        DBName:     getenv("DB_NAME", "attendance_db"),
        DBSSLMode:  getenv("DB_SSLMODE", "disable"),

        JWTSecret: getenv("JWT_SECRET", "supersecret_change_me"),
        AccessTTL: durationEnv("ACCESS_TOKEN_TTL", 8*time.Hour),

        UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
        PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080/files"),

        CloudinaryCloudName: getenv("CLOUDINARY_CLOUD_NAME", ""),
        CloudinaryAPIKey:    getenv("CLOUDINARY_API_KEY", ""),
        CloudinaryAPISecret: getenv("CLOUDINARY_API_SECRET", ""),
        CloudinaryFolder:    getenv("CLOUDINARY_FOLDER", "certificates"),

        RedisAddr:       getenv("REDIS_ADDR", ""),
        RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 240),

        AdminDocument: getenv("ADMIN_DOCUMENT", "00000000"),
        AdminName:     getenv("ADMIN_NAME", "Administrator"),
        SeedDemo:      boolEnv("SEED_DEMO", false),
    }
}

// CloudinaryConfigured reports whether remote file storage should be used.
func (c *Config) CloudinaryConfigured() bool {
    return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getenv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
    if v := os.Getenv(key); v != "" {
        d, err := time.ParseDuration(v)
        if err != nil {
            log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
            return fallback
        }
        return d
    }
    return fallback
}

func intEnv(key string, fallback int) int {
    if v := os.Getenv(key); v != "" {
        parsed, err := strconv.Atoi(v)
        if err != nil {
            log.Printf("invalid int for %s, using fallback %d", key, fallback)
            return fallback
        }
        return parsed
    }
    return fallback
}

func boolEnv(key string, fallback bool) bool {
    switch os.Getenv(key) {
    case "1", "true", "TRUE":
        return true
    case "0", "false", "FALSE":
        return false
    }
    return fallback
}
