package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go"
)

const (
	envPrefix    = "env:"
	ssmPrefix    = "ssm:"
	promptMarker = "prompt"
)

var (
	ErrNoPassword         = errors.New("no password configured")
	ErrParameterNotFound  = errors.New("SSM parameter not found")
	ErrEnvironmentNotSet  = errors.New("environment variable not set")
	ErrPromptNotAvailable = errors.New("interactive password prompt not available")
)

// Resolver turns a configured password reference into a password.
//
//	""/"prompt"      ask interactively
//	"env:NAME"       read environment variable NAME
//	"ssm:/some/path" read a SecureString from AWS SSM Parameter Store
//	anything else    used literally
type Resolver struct {
	Region  string
	Profile string

	ConfigLoader     ConfigLoader
	SSMClientFactory SSMClientFactory
	Prompter         PasswordPrompter
	LookupEnv        func(string) (string, bool)
}

func NewResolver(region, profile string, prompter PasswordPrompter, opts ...func(*Resolver)) *Resolver {
	r := &Resolver{
		Region:           region,
		Profile:          profile,
		ConfigLoader:     &RealConfigLoader{},
		SSMClientFactory: &RealSSMClientFactory{},
		Prompter:         prompter,
		LookupEnv:        os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type RealConfigLoader struct{}

func (RealConfigLoader) LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, opts...)
}

type RealSSMClientFactory struct{}

func (RealSSMClientFactory) NewSSMClient(cfg aws.Config) SSMAPI {
	return ssm.NewFromConfig(cfg)
}

func (r *Resolver) ResolvePassword(ctx context.Context, username, ref string) (string, error) {
	switch {
	case ref == "" || ref == promptMarker:
		return r.prompt(username)
	case strings.HasPrefix(ref, envPrefix):
		return r.fromEnv(strings.TrimPrefix(ref, envPrefix))
	case strings.HasPrefix(ref, ssmPrefix):
		return r.fromSSM(ctx, strings.TrimPrefix(ref, ssmPrefix))
	default:
		return ref, nil
	}
}

func (r *Resolver) prompt(username string) (string, error) {
	if r.Prompter == nil {
		return "", fmt.Errorf("%w: %w", ErrNoPassword, ErrPromptNotAvailable)
	}
	label := "Password"
	if username != "" {
		label = fmt.Sprintf("Password for %s", username)
	}
	return r.Prompter.PromptForPassword(label)
}

func (r *Resolver) fromEnv(name string) (string, error) {
	value, ok := r.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEnvironmentNotSet, name)
	}
	return value, nil
}

func (r *Resolver) fromSSM(ctx context.Context, name string) (string, error) {
	var opts []func(*config.LoadOptions) error
	if r.Region != "" {
		opts = append(opts, config.WithRegion(r.Region))
	}
	if r.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.Profile))
	}

	cfg, err := r.ConfigLoader.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	out, err := r.SSMClientFactory.NewSSMClient(cfg).GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ParameterNotFound" {
			return "", fmt.Errorf("%w: %s", ErrParameterNotFound, name)
		}
		return "", fmt.Errorf("failed to read SSM parameter %s: %w", name, err)
	}

	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("%w: %s has no value", ErrParameterNotFound, name)
	}
	return aws.ToString(out.Parameter.Value), nil
}
