package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient handles API requests to the Pizzaiolo ordering API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	UseMock    bool
}

// Message is one chat message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PizzaOrder mirrors the order record accumulated by the server
type PizzaOrder struct {
	Pizza             string   `json:"pizza,omitempty"`
	Toppings          []string `json:"toppings,omitempty"`
	Extras            []string `json:"extras,omitempty"`
	DeliveryAddress   string   `json:"delivery_address,omitempty"`
	Allergies         string   `json:"allergies,omitempty"`
	DietaryPreference string   `json:"dietary_preferences,omitempty"`
	Customizations    string   `json:"customizations,omitempty"`
}

// TurnResult is the server's answer to one chat turn
type TurnResult struct {
	Reply    string     `json:"message"`
	Order    PizzaOrder `json:"order"`
	Complete bool       `json:"complete"`
}

// OrderRecord is a persisted order returned by the history endpoint
type OrderRecord struct {
	ID        uint      `json:"ID"`
	OrderData string    `json:"order_data"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"CreatedAt"`
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("PIZZAIOLO_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		BaseURL: baseURL,
		UseMock: false,
	}

	// If the server is not reachable, fall back to canned replies so the
	// chat UI stays usable for demos.
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock replies.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// SendTurn submits the conversation so far and returns the assistant's reply,
// the updated order, and the completion flag.
func (c *ApiClient) SendTurn(messages []Message, current PizzaOrder) (*TurnResult, error) {
	if c.UseMock {
		return c.mockTurn(messages, current), nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"messages":      messages,
		"current_order": current,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/api/v1/chat", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("chat request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result TurnResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveOrder persists a completed order
func (c *ApiClient) SaveOrder(order PizzaOrder) error {
	if c.UseMock {
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{"order": order})
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(c.BaseURL+"/api/v1/orders", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to save order (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}

// GetOrders retrieves the order history
func (c *ApiClient) GetOrders() ([]OrderRecord, error) {
	if c.UseMock {
		return []OrderRecord{}, nil
	}

	resp, err := c.httpClient.Get(c.BaseURL + "/api/v1/orders")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to list orders with status code: %d", resp.StatusCode)
	}

	var records []OrderRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// mockTurn produces canned replies when no server is available
func (c *ApiClient) mockTurn(messages []Message, current PizzaOrder) *TurnResult {
	reply := "Welcome to Tony's Pizza! What pizza would you like? We have Margherita, Pepperoni, Veggie, Hawaiian and BBQ Chicken."
	switch {
	case current.Pizza == "":
		// keep the greeting
	case current.DeliveryAddress == "":
		reply = "Sounds good! Where should we deliver your " + current.Pizza + "?"
	case current.Allergies == "":
		reply = "Almost done. Any allergies or dietary preferences I should know about?"
	default:
		reply = "Thanks, your order is confirmed!"
	}

	return &TurnResult{
		Reply:    reply,
		Order:    current,
		Complete: current.Pizza != "" && current.DeliveryAddress != "" && current.Allergies != "",
	}
}
