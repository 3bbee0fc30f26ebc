package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Bridges a hardware punch clock publishing over MQTT into attendance
// records. Each message is one punch: the bridge forwards it to the
// attendance API, which computes working hours on check-out.

// punchMessage is the payload published by the punch clock.
type punchMessage struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"` // "checkin" or "checkout"
	Time       string `json:"time"` // "HH:MM", optional
}

type bridge struct {
	apiURL    string
	authToken string
	client    *http.Client
}

func (b *bridge) forward(msg punchMessage) error {
	if msg.Time == "" {
		msg.Time = time.Now().Format("15:04")
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, b.apiURL+"/attendance", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if b.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.authToken)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.WithFields(log.Fields{
			"employee_id": msg.EmployeeID,
			"status":      resp.StatusCode,
		}).Warn("Attendance API rejected punch")
	}
	return nil
}

func (b *bridge) onMessage(client mqtt.Client, m mqtt.Message) {
	var msg punchMessage
	if err := json.Unmarshal(m.Payload(), &msg); err != nil {
		log.WithError(err).Warn("Discarding malformed punch message")
		return
	}
	if msg.EmployeeID == "" || (msg.Type != "checkin" && msg.Type != "checkout") {
		log.WithField("payload", string(m.Payload())).Warn("Discarding incomplete punch message")
		return
	}

	if err := b.forward(msg); err != nil {
		log.WithError(err).WithField("employee_id", msg.EmployeeID).Error("Failed to forward punch")
		return
	}
	log.WithFields(log.Fields{
		"employee_id": msg.EmployeeID,
		"type":        msg.Type,
		"time":        msg.Time,
	}).Info("Forwarded punch")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment")
	}

	brokerURL := os.Getenv("MQTT_BROKER_URL")
	if brokerURL == "" {
		brokerURL = "tcp://localhost:1883"
	}
	topic := os.Getenv("MQTT_TOPIC")
	if topic == "" {
		topic = "fleetpos/punchclock"
	}
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	b := &bridge{
		apiURL:    apiURL,
		authToken: os.Getenv("SEED_AUTH_TOKEN"),
		client:    &http.Client{Timeout: 10 * time.Second},
	}

	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("fleetpos-punchclock-bridge").
		SetAutoReconnect(true).
		SetOnConnectHandler(func(c mqtt.Client) {
			if token := c.Subscribe(topic, 1, b.onMessage); token.Wait() && token.Error() != nil {
				log.WithError(token.Error()).Fatal("Failed to subscribe to punch topic")
			}
			log.WithField("topic", topic).Info("Subscribed to punch clock topic")
		})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("Failed to connect to MQTT broker")
	}
	log.WithField("broker", brokerURL).Info("Connected to MQTT broker")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	client.Disconnect(250)
	log.Info("Punch clock bridge stopped")
}
