package cli

import "fmt"

type badArgError struct {
	arg    string
	reason string
}

func (e badArgError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.arg, e.reason)
}

func errBadArg(arg, reason string) error {
	return badArgError{arg: arg, reason: reason}
}

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `likes docs` to list topics)", e.topic)
}
