package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karimhasan/inventory-manager/internal/models"
	"github.com/karimhasan/inventory-manager/internal/redissvc"
	"github.com/karimhasan/inventory-manager/internal/report"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")  // sender email
	alertTo          = os.Getenv("ALERT_TO")    // receiver email
	smtpServer       = os.Getenv("SMTP_SERVER") // smtp.example.com
	smtpPort         = os.Getenv("SMTP_PORT")   // e.g., 587
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func configured() bool {
	return smtpServer != "" && alertFrom != "" && alertTo != ""
}

// NotifyLowStock emails a warning when a product's quantity falls to or
// below its threshold, and records the event for the daily summary.
// It is safe to call with SMTP or redis unconfigured.
func NotifyLowStock(p models.Product) {
	status := report.Classify(p.Quantity, p.Threshold)
	if status == report.StatusNormal {
		return
	}

	logStockEvent(p, status)

	if !configured() {
		return
	}

	subject := fmt.Sprintf("Low stock alert: %s", p.Name)
	if status == report.StatusOutOfStock {
		subject = fmt.Sprintf("Out of stock alert: %s", p.Name)
	}
	body := fmt.Sprintf("Product: %s\nQuantity: %d\nThreshold: %d\nTime: %s",
		p.Name, p.Quantity, p.Threshold, time.Now().Format(time.RFC3339))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", alertFrom, alertTo, subject, body)

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)

	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		err := smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg))
		if err != nil {
			log.Printf("Failed to send alert email: %v\n", err)
		}
	}()
}

type StockLogEntry struct {
	ProductID int       `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Threshold int       `json:"threshold"`
	Status    string    `json:"status"`
	Time      time.Time `json:"time"`
}

const DailyStockLogKey = "stock:alertlog:daily"

func logStockEvent(p models.Product, status report.Status) {
	if rdb == nil {
		return
	}
	entry := StockLogEntry{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Threshold: p.Threshold,
		Status:    status.String(),
		Time:      time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyStockLogKey, data).Err()
}

func StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailySummary()
	}
}

func SendDailySummary() {
	if rdb == nil || !configured() {
		return
	}
	entries, err := rdb.LRange(ctx, DailyStockLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyStockLogKey).Err() // clear after reading

	var logs []StockLogEntry
	productCounts := make(map[string]int)
	statusCounts := make(map[string]int)

	for _, item := range entries {
		var entry StockLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			productCounts[entry.Name]++
			statusCounts[entry.Status]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Stock Alert Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total alerts: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Status</h3><ul>")
	for status, count := range statusCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", status, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>By Product</h3><ul>")
	for name, count := range productCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", name, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> at quantity %d (threshold %d, %s) at %s</li>",
			entry.Name, entry.Quantity, entry.Threshold, entry.Status, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")
	subject := "Daily Stock Alert Report"

	msg := strings.Join([]string{
		"From: " + alertFrom,
		"To: " + alertTo,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)

	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		err = smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg))
		if err != nil {
			log.Printf("Failed to send daily summary email: %v\n", err)
		} else {
			log.Println("Daily stock alert summary sent via SMTP.")
		}
	}()
}
