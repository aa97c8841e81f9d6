// Manual endpoint prober. Point it at a running instance:
//
//	BASE_URL=http://localhost:8000 TOKEN=<jwt> go run ./cmd/smoke
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8000"
}

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, path, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL()+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{} // No timeout; quiz generation is slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func check(name string, resp *http.Response, body []byte, err error) {
	if err != nil {
		color.Red("✗ %s: %v", name, err)
		return
	}
	if resp.StatusCode == http.StatusOK {
		color.Green("✓ %s (%d)", name, resp.StatusCode)
	} else {
		color.Red("✗ %s (%d)", name, resp.StatusCode)
	}
	prettyPrint(body)
}

func main() {
	token := os.Getenv("TOKEN")
	if token == "" {
		color.Yellow("TOKEN not set; authenticated endpoints will return 401")
	}

	resp, body, err := sendRequest(http.MethodGet, "/test", "", nil)
	check("GET /test", resp, body, err)

	resp, body, err = sendRequest(http.MethodPost, "/ask", token, map[string]string{
		"query":   "What is composting?",
		"user_id": "smoke",
	})
	check("POST /ask", resp, body, err)

	resp, body, err = sendRequest(http.MethodPost, "/quiz-bot", token, nil)
	check("POST /quiz-bot", resp, body, err)
}
