package smartthings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/ports"
)

var _ ports.SmartThingsPort = (*Client)(nil)

const defaultTimeout = 30 * time.Second

// Client talks to the SmartThings REST API with a personal access token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = model.DefaultAPIURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type capabilityRef struct {
	ID      string `json:"id"`
	Version int    `json:"version,omitempty"`
}

type categoryRef struct {
	Name         string `json:"name"`
	CategoryType string `json:"categoryType,omitempty"`
}

type deviceComponent struct {
	ID           string          `json:"id"`
	Capabilities []capabilityRef `json:"capabilities"`
	Categories   []categoryRef   `json:"categories"`
}

type device struct {
	DeviceID         string            `json:"deviceId"`
	Label            string            `json:"label"`
	Name             string            `json:"name"`
	ManufacturerName string            `json:"manufacturerName"`
	PresentationID   string            `json:"presentationId"`
	Components       []deviceComponent `json:"components"`
}

type link struct {
	Href string `json:"href"`
}

type deviceList struct {
	Items []device `json:"items"`
	Links struct {
		Next *link `json:"next"`
	} `json:"_links"`
}

type commandRequest struct {
	Commands []command `json:"commands"`
}

type command struct {
	Component  string `json:"component"`
	Capability string `json:"capability"`
	Command    string `json:"command"`
	Arguments  []any  `json:"arguments,omitempty"`
}

type commandResponse struct {
	Results []model.CommandResult `json:"results"`
}

// ListDevices returns every device visible to the token, following
// pagination links.
func (c *Client) ListDevices(ctx context.Context) ([]model.RemoteDevice, error) {
	var devices []model.RemoteDevice
	next := c.baseURL + "/devices"
	for next != "" {
		var page deviceList
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}
		for _, d := range page.Items {
			devices = append(devices, d.toModel())
		}
		next = ""
		if page.Links.Next != nil {
			next = page.Links.Next.Href
		}
	}
	return devices, nil
}

func (c *Client) GetStatus(ctx context.Context, deviceID string) (*model.DeviceStatus, error) {
	var status model.DeviceStatus
	if err := c.do(ctx, http.MethodGet, c.deviceURL(deviceID, "status"), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) ExecuteCommand(ctx context.Context, deviceID string, cmd model.Command) ([]model.CommandResult, error) {
	body := commandRequest{Commands: []command{{
		Component:  cmd.Component,
		Capability: cmd.Capability,
		Command:    cmd.Command,
		Arguments:  cmd.Arguments,
	}}}
	var resp commandResponse
	if err := c.do(ctx, http.MethodPost, c.deviceURL(deviceID, "commands"), body, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) deviceURL(deviceID, path string) string {
	return fmt.Sprintf("%s/devices/%s/%s", c.baseURL, url.PathEscape(deviceID), path)
}

func (c *Client) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Method: method, URL: target, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("SmartThings API error: %s %s: %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("SmartThings API error: %s %s: %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (d device) toModel() model.RemoteDevice {
	out := model.RemoteDevice{
		DeviceID:         d.DeviceID,
		Label:            d.Label,
		Name:             d.Name,
		ManufacturerName: d.ManufacturerName,
		PresentationID:   d.PresentationID,
	}
	for _, comp := range d.Components {
		mc := model.Component{ID: comp.ID}
		for _, capability := range comp.Capabilities {
			mc.Capabilities = append(mc.Capabilities, capability.ID)
		}
		for _, category := range comp.Categories {
			mc.Categories = append(mc.Categories, category.Name)
		}
		out.Components = append(out.Components, mc)
	}
	return out
}
