package types

import "log/slog"

type (
	GitHubUsername string
	CommitSHA      string
	SentryDSN      string
)

func (x GitHubUsername) String() string {
	return string(x)
}

func (x CommitSHA) String() string {
	return string(x)
}

func (x SentryDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SentryDSN) String() string {
	return "***********"
}
