// Package ban keeps rate-limit strike counts and ban flags in redis and
// raises an email alert when a client gets blocked. Everything degrades to a
// no-op when redis is not configured (local runs, tests).
package ban

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")
	alertTo          = os.Getenv("ALERT_TO")
	smtpServer       = os.Getenv("SMTP_SERVER")
	smtpPort         = os.Getenv("SMTP_PORT")
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

const (
	strikeThreshold = 10
	strikeWindow    = time.Hour
	banDuration     = 24 * time.Hour
)

func SetRedis(client *redis.Client, c context.Context) {
	rdb = client
	ctx = c
}

func strikeKey(ip string) string { return "ratelimit:strikes:" + ip }
func banKey(ip string) string    { return "ratelimit:ban:" + ip }

// IsBanned reports whether the IP is currently blocked.
func IsBanned(ip string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, banKey(ip)).Result()
	return err == nil && n > 0
}

// Strike records one rate-limit violation. Crossing the threshold within the
// window bans the IP and fires the alert email.
func Strike(ip, route string) {
	if rdb == nil {
		return
	}

	strikes, err := rdb.Incr(ctx, strikeKey(ip)).Result()
	if err != nil {
		log.Printf("failed to record strike for %s: %v", ip, err)
		return
	}
	if strikes == 1 {
		rdb.Expire(ctx, strikeKey(ip), strikeWindow)
	}

	if strikes >= strikeThreshold {
		if err := rdb.Set(ctx, banKey(ip), route, banDuration).Err(); err != nil {
			log.Printf("failed to ban %s: %v", ip, err)
			return
		}
		rdb.Del(ctx, strikeKey(ip))
		log.Printf("banned %s for %s after %d strikes on %s", ip, banDuration, strikes, route)
		sendBanAlertEmail(ip, route, int(strikes))
	}
}

func sendBanAlertEmail(ip, route string, strikes int) {
	if alertTo == "" || smtpServer == "" {
		return
	}

	subject := fmt.Sprintf("BAN ALERT: %s blocked", ip)
	body := fmt.Sprintf("Target: %s\nRoute: %s\nStrikes: %d\nTime: %s",
		ip, route, strikes, time.Now().Format(time.RFC3339))
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", alertFrom, alertTo, subject, body)

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)
	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg)); err != nil {
			log.Printf("failed to send ban alert email: %v", err)
		}
	}()
}
