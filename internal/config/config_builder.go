package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type serverConfigBuilder struct {
	configs []*ServerConfig
	err     error
}

func newServerConfigBuilder() *serverConfigBuilder {
	return &serverConfigBuilder{
		configs: make([]*ServerConfig, 0, 2),
	}
}

func (b *serverConfigBuilder) build() (*ServerConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(ServerConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	applyServerDefaults(config)

	return config, config.validate()
}

func (b *serverConfigBuilder) withEnv() *serverConfigBuilder {
	envCfg := &ServerConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *serverConfigBuilder) withFlags() *serverConfigBuilder {
	b.configs = append(b.configs, parseServerFlags())
	return b
}

type clientConfigBuilder struct {
	configs []*ClientConfig
	err     error
}

func newClientConfigBuilder() *clientConfigBuilder {
	return &clientConfigBuilder{
		configs: make([]*ClientConfig, 0, 2),
	}
}

func (b *clientConfigBuilder) build() (*ClientConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(ClientConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	applyClientDefaults(config)

	return config, config.validate()
}

func (b *clientConfigBuilder) withEnv() *clientConfigBuilder {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *clientConfigBuilder) withFlags() *clientConfigBuilder {
	b.configs = append(b.configs, parseClientFlags())
	return b
}
