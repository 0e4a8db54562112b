package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"staffmatch/internal/models"
	"staffmatch/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// summarizeInstructions is the system instruction for the summarization model.
// It is distinct from the chat persona: the model receives a prior conversation
// serialized as a single user turn and compresses it into an opportunity
// write-up with four sections.
const summarizeInstructions = `The following message from the user contains a series of messages from a prior conversation describing a potential engagement opportunity. Your job is to summarize these messages into a format that will be stored as an opportunity. Include the following sections as you understand them from the conversation.

1. Engagement Name - Name the opportunity based on the goal of the engagement and the client
2. Engagement Summary - Explain in a few sentences what the engagement is about and what will get done during it
3. Required Resources - List all of the roles needed for the engagement, the skills required for each role and the rank requirements. Include a few sentences for each role about what they will be doing.
4. Estimated Start Date and Timeline

Return the result as plain text that can be saved into a database to later be indexed and retrieved.`

// LLMService talks to GigaChat. Single-shot summarization goes through the
// gigago SDK; multi-turn transcripts and embeddings use the REST API directly
// because the SDK does not expose arbitrary message lists or the embeddings
// endpoint.
type LLMService struct {
	client         *gigago.Client
	summarizer     *gigago.GenerativeModel
	config         *config.GigaChatConfig
	embeddingModel string
	logger         *zap.Logger
	httpClient     *http.Client
	baseURL        string

	// accessToken is shared by the chat, summarize and index-rebuild paths,
	// which run on concurrent request goroutines.
	mu          sync.RWMutex
	accessToken string
}

func (s *LLMService) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// refreshAccessToken re-authenticates unless another goroutine already
// replaced the stale token.
func (s *LLMService) refreshAccessToken(ctx context.Context, stale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accessToken != stale {
		return nil
	}
	token, err := getAccessToken(ctx, s.config, s.httpClient, s.logger)
	if err != nil {
		return err
	}
	s.accessToken = token
	return nil
}

func NewLLMService(cfg *config.GigaChatConfig, embeddingModel string, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	summarizer := client.GenerativeModel("GigaChat")
	summarizer.SystemInstruction = summarizeInstructions
	summarizer.Temperature = 0.3

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	accessToken, err := getAccessToken(ctx, cfg, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	return &LLMService{
		client:         client,
		summarizer:     summarizer,
		config:         cfg,
		embeddingModel: embeddingModel,
		logger:         logger,
		httpClient:     httpClient,
		accessToken:    accessToken,
		// GigaChat REST API
		// Documentation: https://developers.sber.ru/docs/ru/gigachat/api/main
		baseURL: "https://gigachat.devices.sberbank.ru/api/v1",
	}, nil
}

// getAccessToken obtains an access token from the GigaChat OAuth endpoint.
// The API key is expected to be Base64-encoded already.
func getAccessToken(ctx context.Context, cfg *config.GigaChatConfig, httpClient *http.Client, logger *zap.Logger) (string, error) {
	oauthURL := "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"

	formData := url.Values{}
	formData.Set("scope", cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, "POST", oauthURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.New().String())
	req.Header.Set("Authorization", "Basic "+cfg.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("OAuth request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
		)
		return "", fmt.Errorf("OAuth failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var oauthResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return "", fmt.Errorf("failed to decode OAuth response: %w", err)
	}
	if oauthResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token in OAuth response")
	}

	logger.Info("Access token obtained", zap.Int("expires_in", oauthResp.ExpiresIn))
	return oauthResp.AccessToken, nil
}

// Complete submits a full role-tagged transcript and returns the assistant
// reply. Endpoint: POST /chat/completions.
func (s *LLMService) Complete(ctx context.Context, messages []models.Message) (string, error) {
	wireMessages := make([]map[string]interface{}, 0, len(messages))
	for _, m := range messages {
		wireMessages = append(wireMessages, map[string]interface{}{
			"role":    string(m.Role),
			"content": m.Content,
		})
	}

	requestBody := map[string]interface{}{
		"model":       "GigaChat",
		"messages":    wireMessages,
		"temperature": 0.3,
		"stream":      false,
	}

	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := s.postJSON(ctx, "/chat/completions", requestBody, &completionResp); err != nil {
		return "", err
	}
	if len(completionResp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	reply := strings.TrimSpace(completionResp.Choices[0].Message.Content)
	s.logger.Debug("Chat completion received", zap.Int("length", len(reply)))
	return reply, nil
}

// Summarize compresses a serialized conversation into an opportunity write-up
// through the SDK summarizer model.
func (s *LLMService) Summarize(ctx context.Context, conversation string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: conversation},
	}

	resp, err := s.summarizer.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// EmbedDocuments computes embeddings for a batch of texts.
// Endpoint: POST /embeddings.
func (s *LLMService) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	requestBody := map[string]interface{}{
		"model": s.embeddingModel,
		"input": texts,
	}

	var embedResp struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
			Index     int       `json:"index"`
		} `json:"data"`
	}

	if err := s.postJSON(ctx, "/embeddings", requestBody, &embedResp); err != nil {
		return nil, err
	}
	if len(embedResp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(embedResp.Data), len(texts))
	}

	embeddings := make([][]float32, len(texts))
	for _, item := range embedResp.Data {
		if item.Index < 0 || item.Index >= len(texts) {
			return nil, fmt.Errorf("embedding index out of range: %d", item.Index)
		}
		embeddings[item.Index] = item.Embedding
	}
	return embeddings, nil
}

func (s *LLMService) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := s.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// postJSON performs an authorized JSON call with bounded retries on transport
// errors and 5xx responses, refreshing the access token once on 401.
func (s *LLMService) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	refreshed := false
	for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+path, bytes.NewReader(jsonData))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		token := s.token()
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request to %s failed: %w", path, err)
			continue
		}

		if resp.StatusCode == http.StatusUnauthorized && !refreshed {
			resp.Body.Close()
			if err := s.refreshAccessToken(ctx, token); err != nil {
				return fmt.Errorf("token refresh failed: %w", err)
			}
			refreshed = true
			attempt--
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			bodyBytes, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("%s failed with status %d: %s", path, resp.StatusCode, string(bodyBytes))
			continue
		}

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return fmt.Errorf("%s failed with status %d: %s", path, resp.StatusCode, string(bodyBytes))
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to decode %s response: %w", path, err)
		}
		return nil
	}

	return lastErr
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
