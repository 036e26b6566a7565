// Package messenger talks to the Messenger Platform through the Graph API.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"shopbot/config"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"
)

const maxErrorBodySize = 4 << 10

// graphClient implements service.MessengerService against the Graph API.
type graphClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger

	// Page label ids by name. Labels are never deleted by this service.
	labelsMu     sync.Mutex
	labels       map[string]string
	labelsLoaded bool
}

// NewGraphClient builds the client from the messenger config section.
func NewGraphClient(cfg *config.MessengerConfig, logger *slog.Logger) (service.MessengerService, error) {
	if cfg == nil || cfg.PageAccessToken == "" {
		return nil, errors.New("messenger page access token must be provided")
	}

	return &graphClient{
		baseURL:     strings.TrimRight(cfg.GraphAPIBase, "/") + "/" + cfg.GraphAPIVersion,
		accessToken: cfg.PageAccessToken,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
		labels:      make(map[string]string),
	}, nil
}

type sendRequest struct {
	Recipient     recipient   `json:"recipient"`
	MessagingType string      `json:"messaging_type"`
	Message       textMessage `json:"message"`
}

type recipient struct {
	ID string `json:"id"`
}

type textMessage struct {
	Text string `json:"text"`
}

type labelList struct {
	Data []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type idResponse struct {
	ID string `json:"id"`
}

// GraphError is the error object returned by the Graph API.
type GraphError struct {
	StatusCode int
	Message    string `json:"message"`
	Type       string `json:"type"`
	Code       int    `json:"code"`
}

func (e *GraphError) Error() string {
	return "graph api: " + e.Message
}

// SendText delivers a reply within the standard messaging window.
func (c *graphClient) SendText(ctx context.Context, recipientID, text string) error {
	body := sendRequest{
		Recipient:     recipient{ID: recipientID},
		MessagingType: "RESPONSE",
		Message:       textMessage{Text: text},
	}

	if err := c.do(ctx, http.MethodPost, c.baseURL+"/me/messages", body, nil); err != nil {
		return errors.Wrapf(err, "failed to send message to %s", recipientID)
	}

	return nil
}

// TagAccount resolves every label (creating missing ones) and attaches it to the user.
func (c *graphClient) TagAccount(ctx context.Context, recipientID string, labels []string) error {
	for _, name := range labels {
		labelID, err := c.resolveLabel(ctx, name)
		if err != nil {
			return err
		}

		payload := map[string]string{"user": recipientID}
		if err := c.do(ctx, http.MethodPost, c.baseURL+"/"+url.PathEscape(labelID)+"/label", payload, nil); err != nil {
			return errors.Wrapf(err, "failed to attach label %q to %s", name, recipientID)
		}
	}

	return nil
}

// resolveLabel returns the cached id, else creates the label. The page's labels are
// listed once per client; the mutex is held so concurrent callers do not create duplicates.
func (c *graphClient) resolveLabel(ctx context.Context, name string) (string, error) {
	c.labelsMu.Lock()
	defer c.labelsMu.Unlock()

	if id, ok := c.labels[name]; ok {
		return id, nil
	}

	if !c.labelsLoaded {
		if err := c.loadLabels(ctx); err != nil {
			return "", err
		}
		c.labelsLoaded = true

		if id, ok := c.labels[name]; ok {
			return id, nil
		}
	}

	var created idResponse
	payload := map[string]string{"page_label_name": name}
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/me/custom_labels", payload, &created); err != nil {
		return "", errors.Wrapf(err, "failed to create label %q", name)
	}
	if created.ID == "" {
		return "", errors.Errorf("graph api returned no id for label %q", name)
	}

	c.labels[name] = created.ID
	c.logger.InfoContext(ctx, "[Messenger] Label created", slog.String("label", name), slog.String("label_id", created.ID))

	return created.ID, nil
}

func (c *graphClient) loadLabels(ctx context.Context) error {
	next := c.baseURL + "/me/custom_labels?fields=name"
	for next != "" {
		var page labelList
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return errors.Wrap(err, "failed to list labels")
		}
		for _, label := range page.Data {
			c.labels[label.Name] = label.ID
		}
		next = page.Paging.Next
	}

	return nil
}

func (c *graphClient) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.WithStack(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Paging links already carry the token.
	query := req.URL.Query()
	if query.Get("access_token") == "" {
		query.Set("access_token", c.accessToken)
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeGraphError(resp)
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "failed to decode graph api response")
}

func decodeGraphError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var envelope struct {
		Error *GraphError `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		envelope.Error.StatusCode = resp.StatusCode

		return envelope.Error
	}

	return &GraphError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}
