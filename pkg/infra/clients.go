package infra

import (
	"github.com/osscat-dev/osscat/pkg/domain/interfaces"
	"github.com/osscat-dev/osscat/pkg/infra/overrides"
)

type Clients struct {
	githubApp     interfaces.GitHubApp
	overrideStore interfaces.OverrideStore
	sinks         []interfaces.ResultSink
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		overrideStore: overrides.New("overrides"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) OverrideStore() interfaces.OverrideStore {
	return x.overrideStore
}
func (x *Clients) Sinks() []interfaces.ResultSink {
	return x.sinks
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithOverrideStore(store interfaces.OverrideStore) Option {
	return func(x *Clients) {
		x.overrideStore = store
	}
}

func WithSink(sink interfaces.ResultSink) Option {
	return func(x *Clients) {
		x.sinks = append(x.sinks, sink)
	}
}
