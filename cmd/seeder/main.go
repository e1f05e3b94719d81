package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Config
const (
	API_URL = "http://localhost:8080/api/v1/predictions/match"
)

// Request matches models.PredictRequest (simplified)
type Request struct {
	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	Venue    string `json:"venue"`
	Hour     int    `json:"hour"`
	DayCode  int    `json:"day_code"`
	Streak   int    `json:"streak"`
	Season   int    `json:"season"`
}

func main() {
	// Fire a sample prediction request at a locally running server
	req := Request{
		Team:     "Boston Celtics",
		Opponent: "Miami Heat",
		Venue:    "Home",
		Hour:     19,
		DayCode:  2,
		Streak:   2,
		Season:   2024,
	}

	payload, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("Failed to marshal JSON: %v", err)
	}

	httpReq, err := http.NewRequest("POST", API_URL, bytes.NewBuffer(payload))
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Response: %s\n", string(body))
}
