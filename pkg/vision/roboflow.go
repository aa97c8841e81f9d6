// Package vision wraps the Roboflow serverless inference API. Two hosted
// models look at the same image: a waste-segregation classifier and an object
// identifier. Their raw outputs are passed on unparsed; the chat model turns
// them into an advisory.
package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"eco-chat-be/internal/apperr"
	"eco-chat-be/internal/pkg/logger"
)

const (
	defaultBaseURL = "https://serverless.roboflow.com"

	segregationModelID = "waste-segregation-d2vj9/5"
	objectModelID      = "trash-detection-ujrn0/1"
)

// Classifier runs the two hosted models against an image on disk.
type Classifier interface {
	DetectSegregation(ctx context.Context, imagePath string) (map[string]interface{}, error)
	IdentifyObject(ctx context.Context, imagePath string) (map[string]interface{}, error)
}

type RoboflowClient struct {
	apiKey string

	// BaseURL is overridable for tests.
	BaseURL string

	client *http.Client
	log    logger.ILogger
}

var _ Classifier = &RoboflowClient{}

func NewRoboflowClient(apiKey string, log logger.ILogger) *RoboflowClient {
	return &RoboflowClient{
		apiKey:  apiKey,
		BaseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// DetectSegregation runs the waste-segregation model.
func (c *RoboflowClient) DetectSegregation(ctx context.Context, imagePath string) (map[string]interface{}, error) {
	result, err := c.infer(ctx, imagePath, segregationModelID)
	if err != nil {
		c.log.Error("vision", "Error during trash detection", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	c.log.Debug("vision", "Roboflow trash_detection result", map[string]interface{}{"result": result})
	return result, nil
}

// IdentifyObject runs the object-identification model.
func (c *RoboflowClient) IdentifyObject(ctx context.Context, imagePath string) (map[string]interface{}, error) {
	result, err := c.infer(ctx, imagePath, objectModelID)
	if err != nil {
		c.log.Error("vision", "Error during object identification", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	c.log.Debug("vision", "Roboflow identify_object result", map[string]interface{}{"result": result})
	return result, nil
}

// infer posts a base64-encoded image to the hosted model and returns the raw
// structured result.
func (c *RoboflowClient) infer(ctx context.Context, imagePath, modelID string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	inferURL := fmt.Sprintf("%s/%s?api_key=%s", c.BaseURL, modelID, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, inferURL, strings.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUpstreamDegraded, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: inference status %d, body: %s", apperr.ErrUpstreamDegraded, res.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal inference response: %w", err)
	}
	return result, nil
}
