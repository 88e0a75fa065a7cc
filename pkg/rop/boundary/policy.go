package boundary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Backoff selects how the delay grows between retries.
type Backoff int

const (
	// Constant waits the base delay before every retry.
	Constant Backoff = iota
	// Linear waits base*k before retry k.
	Linear
	// Exponential waits base*2^(k-1) before retry k.
	Exponential
)

var backoffNames = map[Backoff]string{
	Constant:    "constant",
	Linear:      "linear",
	Exponential: "exponential",
}

func (b Backoff) String() string {
	if name, ok := backoffNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backoff(%d)", int(b))
}

// ParseBackoff accepts the names returned by String, case-insensitively. An
// empty name is Constant.
func ParseBackoff(name string) (Backoff, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Constant, nil
	}
	for b, n := range backoffNames {
		if n == name {
			return b, nil
		}
	}
	return Constant, fmt.Errorf("boundary: unknown backoff %q", name)
}

func (b Backoff) MarshalText() ([]byte, error) {
	if _, ok := backoffNames[b]; !ok {
		return nil, fmt.Errorf("boundary: unknown backoff %d", int(b))
	}
	return []byte(b.String()), nil
}

func (b *Backoff) UnmarshalText(text []byte) error {
	parsed, err := ParseBackoff(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Backoff) MarshalYAML() (any, error) {
	text, err := b.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (b *Backoff) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(name))
}

// RetryPolicy configures retries of a failing call. It holds no state; every
// call keeps its own attempt counter.
type RetryPolicy struct {
	// Times is the number of retries after the first attempt.
	Times int `yaml:"times"`
	// Delay is the base delay.
	Delay time.Duration `yaml:"delay"`
	// Backoff defaults to Constant.
	Backoff Backoff `yaml:"backoff,omitempty"`
}

var (
	ErrNegativeTimes = errors.New("boundary: retry times must not be negative")
	ErrNegativeDelay = errors.New("boundary: retry delay must not be negative")
)

func (p RetryPolicy) Validate() error {
	var errs []error
	if p.Times < 0 {
		errs = append(errs, ErrNegativeTimes)
	}
	if p.Delay < 0 {
		errs = append(errs, ErrNegativeDelay)
	}
	if _, ok := backoffNames[p.Backoff]; !ok {
		errs = append(errs, fmt.Errorf("boundary: unknown backoff %d", int(p.Backoff)))
	}
	return errors.Join(errs...)
}

// DelayFor returns the delay before retry number retry, counted from 1.
func (p RetryPolicy) DelayFor(retry int) time.Duration {
	if p.Delay <= 0 || retry < 1 {
		return 0
	}
	switch p.Backoff {
	case Linear:
		return p.Delay * time.Duration(retry)
	case Exponential:
		return p.Delay << (retry - 1)
	default:
		return p.Delay
	}
}

// UnmarshalYAML decodes and validates a policy, e.g.
//
//	times: 3
//	delay: 20ms
//	backoff: exponential
func (p *RetryPolicy) UnmarshalYAML(value *yaml.Node) error {
	type plain RetryPolicy
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	policy := RetryPolicy(decoded)
	if err := policy.Validate(); err != nil {
		return err
	}
	*p = policy
	return nil
}

// LoadRetryPolicy decodes a policy from a YAML document.
func LoadRetryPolicy(data []byte) (RetryPolicy, error) {
	var p RetryPolicy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return RetryPolicy{}, fmt.Errorf("boundary: decode retry policy: %w", err)
	}
	return p, nil
}
