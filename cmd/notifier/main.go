package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/config"
	"github.com/shiftconnect-dev/gig-marketplace/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		return
	}

	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		return
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open rabbitmq channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"notification_queue",
		true,  // durable
		false, // keep the queue around when there are no consumers
		false, // not exclusive
		false, // wait for the broker to confirm the declaration
		nil,
	)
	if err != nil {
		logger.Error("failed to declare queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // let the broker pick a consumer tag
		false, // manual acks
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to consume messages", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("received message", slog.String("message", string(msg.Body)))
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("failed to decode mail message", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				email := mail.NewMsg()
				if err := email.From(cfg.Email.From); err != nil {
					logger.Error("failed to set mail sender", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := email.To(mailMessage.To); err != nil {
					logger.Error("failed to set mail recipient", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "welcome":
					tmpl, err := template.ParseFiles("./templates/welcome_email.html")
					if err != nil {
						logger.Error("failed to parse mail template", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := email.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("failed to set mail body", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					email.Subject("ShiftConnect - Welcome")
				case "reset_password":
					tmpl, err := template.ParseFiles("./templates/reset_password_email.html")
					if err != nil {
						logger.Error("failed to parse mail template", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := email.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("failed to set mail body", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					email.Subject("ShiftConnect - Password Reset")
				case "shift_response":
					tmpl, err := template.ParseFiles("./templates/shift_response_email.html")
					if err != nil {
						logger.Error("failed to parse mail template", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := email.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("failed to set mail body", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					email.Subject("ShiftConnect - Shift Update")
				default:
					logger.Error("unsupported mail type", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(email); err != nil {
					logger.Error("failed to send mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue for another attempt
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for messages... (press CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down notifier worker...")
	cancel()
	wg.Wait()
	slog.Info("notifier worker stopped")
}
