// Package config reads the service configuration once at process start.
// Clients receive the parsed struct by reference; nothing reads env vars at
// call time.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every external endpoint and credential the service talks to.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// CRM collaborator (contacts, accounts, notes, opportunities).
	CRMBaseURL   string `env:"CRM_BASE_URL"`
	CRMAPIKey    string `env:"CRM_API_KEY"`
	CRMPortalURL string `env:"CRM_PORTAL_URL" envDefault:"https://railflow.myfreshworks.com"`

	// Billing collaborator (networks, estimates, invoices, delivery).
	BillingBaseURL   string `env:"BILLING_BASE_URL"`
	BillingAPIKey    string `env:"BILLING_API_KEY"`
	BillingPortalURL string `env:"BILLING_PORTAL_URL" envDefault:"https://railflow.hiveage.com"`

	// Team notification webhook. Empty disables notifications.
	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL"`

	// CRM pipeline column an opportunity is moved to once invoiced.
	InvoiceDealStageID int64 `env:"INVOICE_DEAL_STAGE_ID" envDefault:"16000263411"`

	// Billing-record audit store.
	AWSRegion           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint    string `env:"DYNAMODB_ENDPOINT"`
	BillingRecordsTable string `env:"BILLING_RECORDS_TABLE" envDefault:"billing_records"`
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CRMBaseURL == "" {
		return nil, fmt.Errorf("CRM_BASE_URL is required")
	}
	if cfg.BillingBaseURL == "" {
		return nil, fmt.Errorf("BILLING_BASE_URL is required")
	}
	return cfg, nil
}
