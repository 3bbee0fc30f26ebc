package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Seeds the API with a few months of realistic demo data: vehicles,
// employees, income and expense ledger entries and attendance punches.

var authToken string

var vehicleTypes = []string{"three_wheeler", "car", "van", "bike", "lorry"}

var serviceTypes = []string{"full_service", "wash", "repair", "hire", "oil_change", "other"}

var expenseCategories = []string{"fuel", "repair", "insurance", "license", "spare_parts", "salary", "other"}

var employeeNames = []struct {
	Name     string
	Position string
}{
	{"Kamal Silva", "driver"},
	{"Nimal Perera", "driver"},
	{"Sunil Fernando", "mechanic"},
	{"Ruwan Jayasinghe", "cleaner"},
	{"Chamari Dissanayake", "cashier"},
}

func authorizedPost(url string, body *bytes.Buffer) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

// postForID posts a JSON payload and returns the created record's id.
func postForID(url string, payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := authorizedPost(url, bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("request to %s failed with status: %d", url, resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	id, _ := result["id"].(string)
	return id, nil
}

// login registers (or reuses) the seed admin account and captures a token.
func login(apiURL string) error {
	if token := os.Getenv("SEED_AUTH_TOKEN"); token != "" {
		authToken = token
		return nil
	}

	creds := map[string]string{"username": "seeder", "password": "seeder-pass-123"}
	register := map[string]string{
		"username":   "seeder",
		"email":      "seeder@fleetpos.lk",
		"password":   "seeder-pass-123",
		"first_name": "Seed",
		"last_name":  "Account",
		"role":       "admin",
	}

	data, _ := json.Marshal(register)
	resp, err := authorizedPost(apiURL+"/auth/register", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	resp.Body.Close()

	data, _ = json.Marshal(creds)
	resp, err = authorizedPost(apiURL+"/auth/login", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status: %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	authToken = result.Token
	return nil
}

func seedVehicles(apiURL string, count int) []string {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		vtype := vehicleTypes[rand.Intn(len(vehicleTypes))]
		payload := map[string]interface{}{
			"vehicle_number": fmt.Sprintf("WP %s-%04d", []string{"CAB", "KA", "NB", "PQ"}[rand.Intn(4)], 1000+rand.Intn(9000)),
			"owner_nic":      fmt.Sprintf("%09dV", 100000000+rand.Intn(900000000)),
			"vehicle_type":   vtype,
		}
		id, err := postForID(apiURL+"/vehicles", payload)
		if err != nil {
			log.WithError(err).Warn("Failed to create vehicle")
			continue
		}
		ids = append(ids, id)
		log.WithFields(log.Fields{"vehicle_id": id, "type": vtype}).Info("Created vehicle")
	}
	return ids
}

func seedEmployees(apiURL string, vehicleIDs []string) []string {
	ids := make([]string, 0, len(employeeNames))
	for _, e := range employeeNames {
		payload := map[string]interface{}{
			"name":     e.Name,
			"nic":      fmt.Sprintf("%09dV", 100000000+rand.Intn(900000000)),
			"position": e.Position,
			"salary":   40000 + float64(rand.Intn(40))*1000,
		}
		if e.Position == "driver" && len(vehicleIDs) > 0 {
			payload["vehicle_id"] = vehicleIDs[rand.Intn(len(vehicleIDs))]
		}
		id, err := postForID(apiURL+"/employees", payload)
		if err != nil {
			log.WithError(err).Warn("Failed to create employee")
			continue
		}
		ids = append(ids, id)
		log.WithFields(log.Fields{"employee_id": id, "position": e.Position}).Info("Created employee")
	}
	return ids
}

func seedTransactions(apiURL string, vehicleIDs []string, days int) {
	created := 0
	for d := days; d >= 0; d-- {
		date := time.Now().AddDate(0, 0, -d)
		for i := 0; i < 1+rand.Intn(4); i++ {
			payload := map[string]interface{}{
				"vehicle_id":     vehicleIDs[rand.Intn(len(vehicleIDs))],
				"amount":         500 + float64(rand.Intn(95))*100,
				"service_type":   serviceTypes[rand.Intn(len(serviceTypes))],
				"payment_method": "cash",
				"date":           date.Format(time.RFC3339),
			}
			if _, err := postForID(apiURL+"/incomes", payload); err != nil {
				log.WithError(err).Warn("Failed to record income")
				continue
			}
			created++
		}
		if rand.Intn(2) == 0 {
			payload := map[string]interface{}{
				"vehicle_id":     vehicleIDs[rand.Intn(len(vehicleIDs))],
				"amount":         300 + float64(rand.Intn(50))*100,
				"category":       expenseCategories[rand.Intn(len(expenseCategories))],
				"payment_method": "cash",
				"date":           date.Format(time.RFC3339),
			}
			if _, err := postForID(apiURL+"/expenses", payload); err != nil {
				log.WithError(err).Warn("Failed to record expense")
			}
		}
	}
	log.WithField("count", created).Info("Recorded income entries")
}

func seedAttendance(apiURL string, employeeIDs []string) {
	for _, id := range employeeIDs {
		in := map[string]string{"employee_id": id, "type": "checkin", "time": fmt.Sprintf("0%d:%02d", 7+rand.Intn(2), rand.Intn(60))}
		if _, err := postForID(apiURL+"/attendance", in); err != nil {
			log.WithError(err).Warn("Failed to mark check-in")
			continue
		}
		out := map[string]string{"employee_id": id, "type": "checkout", "time": fmt.Sprintf("%d:%02d", 16+rand.Intn(3), rand.Intn(60))}
		if _, err := postForID(apiURL+"/attendance", out); err != nil {
			log.WithError(err).Warn("Failed to mark check-out")
		}
	}
	log.WithField("employees", len(employeeIDs)).Info("Marked attendance")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment")
	}

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	if err := login(apiURL); err != nil {
		log.WithError(err).Fatal("Failed to authenticate against API")
	}

	vehicleIDs := seedVehicles(apiURL, 6)
	if len(vehicleIDs) == 0 {
		log.Fatal("No vehicles created, aborting")
	}
	employeeIDs := seedEmployees(apiURL, vehicleIDs)

	seedTransactions(apiURL, vehicleIDs, 90)
	seedAttendance(apiURL, employeeIDs)

	log.Info("Seeding complete")
}
