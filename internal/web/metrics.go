package web

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics is the privacy-conscious visitor tracking and diagnostics store.
// IP addresses are hashed with a per-process salt before storage, Do Not
// Track is respected, and records older than twelve months are cleaned up.
type Metrics struct {
	db         *sql.DB
	salt       string
	adminToken string
}

// Diagnostic is one recorded internal event, e.g. a locale reload failure.
type Diagnostic struct {
	Event     string    `json:"event"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats is the admin statistics payload.
type Stats struct {
	TotalVisitors     int64        `json:"total_visitors"`
	UniqueVisitors    int64        `json:"unique_visitors"`
	VisitorsToday     int64        `json:"visitors_today"`
	VisitorsThisWeek  int64        `json:"visitors_this_week"`
	RecentDiagnostics []Diagnostic `json:"recent_diagnostics"`
}

// NewMetrics initializes the schema and the admin token.
func NewMetrics(db *sql.DB) (*Metrics, error) {
	m := &Metrics{
		db:         db,
		salt:       randomToken(),
		adminToken: randomToken(),
	}

	createVisitors := `
	CREATE TABLE IF NOT EXISTS visitors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip TEXT NOT NULL,
		user_agent TEXT,
		path TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createVisitors); err != nil {
		return nil, err
	}

	createDiagnostics := `
	CREATE TABLE IF NOT EXISTS diagnostics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event TEXT NOT NULL,
		detail TEXT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createDiagnostics); err != nil {
		return nil, err
	}

	go m.cleanupOldVisitorData()

	log.Println("Privacy: visitor tracking enabled with hashed IP addresses")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", m.adminToken)
	}
	return m, nil
}

func randomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(bytes)
}

// hashIP hashes consistently per IP so unique-visitor counts work without
// storing raw addresses.
func (m *Metrics) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + m.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// TrackingMiddleware records page views in the background, skipping static
// assets, admin pages and clients sending DNT.
func (m *Metrics) TrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		go m.track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (m *Metrics) track(ip, userAgent, path string) {
	_, err := m.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, m.hashIP(ip), userAgent, path, time.Now())
	if err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

// RecordDiagnostic stores an internal event. This is the diagnostic channel
// locale load failures are reported to; they are never surfaced to visitors.
func (m *Metrics) RecordDiagnostic(event, detail string) {
	_, err := m.db.Exec(`
		INSERT INTO diagnostics (event, detail, timestamp)
		VALUES (?, ?, ?)
	`, event, detail, time.Now())
	if err != nil {
		log.Printf("Error recording diagnostic %s: %v", event, err)
	}
}

func (m *Metrics) cleanupOldVisitorData() {
	result, err := m.db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if deleted, _ := result.RowsAffected(); deleted > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than 12 months", deleted)
	}
}

// Stats aggregates visitor counts and the most recent diagnostics.
func (m *Metrics) Stats() (*Stats, error) {
	stats := &Stats{}

	if err := m.db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}
	if err := m.db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}
	if err := m.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday); err != nil {
		return nil, err
	}
	if err := m.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitorsThisWeek); err != nil {
		return nil, err
	}

	rows, err := m.db.Query(`
		SELECT event, detail, timestamp
		FROM diagnostics
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d Diagnostic
		if err := rows.Scan(&d.Event, &d.Detail, &d.Timestamp); err != nil {
			continue
		}
		stats.RecentDiagnostics = append(stats.RecentDiagnostics, d)
	}
	return stats, rows.Err()
}

func (m *Metrics) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(m.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *Metrics) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		adminUsername := os.Getenv("ADMIN_USERNAME")
		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminUsername == "" || adminPassword == "" {
			log.Println("Admin login rejected: ADMIN_USERNAME/ADMIN_PASSWORD not configured")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Admin access not configured",
			})
			return
		}

		if username == adminUsername && password == adminPassword {
			c.SetCookie("admin_token", m.adminToken, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", m.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
		} else {
			log.Printf("Failed admin login attempt from %s", m.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
		}
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie("admin_token", "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(m.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := m.Stats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := m.Stats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}
