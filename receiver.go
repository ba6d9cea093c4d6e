package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Args holds the keyword arguments of a single dispatch, keyed by parameter name.
type Args map[string]any

// Receiver is an application-supplied callback registered on a Signal.
// A receiver runs to completion when notified; the signal owns sequencing,
// so receivers must not schedule their own execution (see Detach).
type Receiver interface {
	// Params reports the parameter names the receiver accepts.
	Params() []string

	// Notify runs the receiver with the dispatch arguments.
	Notify(ctx context.Context, args Args) error
}

// deferredReceiver marks receivers that schedule their work instead of
// running it to completion when notified. Registration refuses them.
type deferredReceiver interface {
	Deferred() bool
}

type receiverFunc struct {
	params []string
	fn     func(context.Context, Args) error
}

// NewReceiverFunc adapts a plain function into a Receiver that declares the
// given parameter names.
//
// Example:
//
//	r := signals.NewReceiverFunc(func(ctx context.Context, args signals.Args) error {
//	    return audit(ctx, args["name"].(string), args["value"])
//	}, "name", "value")
func NewReceiverFunc(fn func(context.Context, Args) error, params ...string) Receiver {
	return &receiverFunc{
		params: params,
		fn:     fn,
	}
}

func (r *receiverFunc) Params() []string { return r.params }

func (r *receiverFunc) Notify(ctx context.Context, args Args) error {
	return r.fn(ctx, args)
}

// typedReceiver is a generic, type-safe receiver implementation.
type typedReceiver[T any] struct {
	params []string
	fn     func(context.Context, T) error
}

// NewReceiver creates a type-safe receiver from a function taking a struct of
// arguments. The declared parameter names are derived from T's exported
// fields: the json tag when present, otherwise the lowercased field name.
//
// Example:
//
//	type Rename struct {
//	    Name  string `json:"name"`
//	    Value int    `json:"value"`
//	}
//
//	r := signals.NewReceiver(func(ctx context.Context, args Rename) error {
//	    return apply(ctx, args.Name, args.Value)
//	})
func NewReceiver[T any](fn func(context.Context, T) error) Receiver {
	var zero T
	return &typedReceiver[T]{
		params: paramNames(zero),
		fn:     fn,
	}
}

func (r *typedReceiver[T]) Params() []string { return r.params }

// Notify decodes the dispatch arguments into T and runs the receiver.
// Returns an error if the arguments cannot be represented as T.
func (r *typedReceiver[T]) Notify(ctx context.Context, args Args) error {
	typed, err := decodeArgs[T](args)
	if err != nil {
		return err
	}
	return r.fn(ctx, typed)
}

// paramNames extracts parameter names from a struct value using reflection.
// Unexported fields and fields tagged `json:"-"` are skipped.
func paramNames(v any) []string {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := strings.ToLower(f.Name)
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		names = append(names, name)
	}
	return names
}

// decodeArgs converts dispatch arguments to type T through a JSON round trip.
func decodeArgs[T any](args Args) (T, error) {
	var typed T

	data, err := json.Marshal(args)
	if err != nil {
		return typed, fmt.Errorf("failed to encode arguments: %w", err)
	}
	if err := json.Unmarshal(data, &typed); err != nil {
		return typed, fmt.Errorf("failed to decode arguments: %w", err)
	}
	return typed, nil
}
