// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package topaz

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/TheThingsIndustries/topaz/pkg/message"
	"github.com/TheThingsIndustries/topaz/pkg/router"
	"github.com/TheThingsIndustries/topaz/pkg/topic"
	"golang.org/x/net/websocket"
)

func publishHandler(ctx context.Context, r *router.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var msg message.Message
		if err := json.NewDecoder(req.Body).Decode(&msg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := r.Publish(ctx, &msg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
}

type validation struct {
	Topic  string `json:"topic"`
	Intent string `json:"intent"`
	Valid  bool   `json:"valid"`
	Kind   string `json:"kind"`
}

func validateHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := req.URL.Query().Get("topic")
		intent := topic.Subscribe
		if req.URL.Query().Get("intent") == "publish" {
			intent = topic.Publish
		}
		out, _ := json.Marshal(validation{
			Topic:  name,
			Intent: intent.String(),
			Valid:  topic.Validate(intent, name),
			Kind:   topic.KindOf(topic.Split(name)).String(),
		})
		w.Header().Set("content-type", "application/json")
		w.Write(out)
	})
}

func triplesHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := req.URL.Query().Get("topic")
		type triple struct {
			Prefix string `json:"prefix,omitempty"`
			Root   bool   `json:"root,omitempty"`
			Word   string `json:"word"`
			Name   string `json:"name"`
		}
		var triples []triple
		for _, t := range topic.Triples(name) {
			if t.Prefix == topic.Root {
				// the root sentinel is not printable
				triples = append(triples, triple{Root: true, Word: t.Word, Name: t.Name})
				continue
			}
			triples = append(triples, triple{Prefix: t.Prefix, Word: t.Word, Name: t.Name})
		}
		out, _ := json.Marshal(triples)
		w.Header().Set("content-type", "application/json")
		w.Write(out)
	})
}

func watchHandler(ctx context.Context, r *router.Router) http.Handler {
	return websocket.Handler(func(ws *websocket.Conn) {
		defer ws.Close()
		filter := ws.Request().URL.Query().Get("filter")
		w, err := r.Watch(ctx, filter)
		if err != nil {
			websocket.JSON.Send(ws, map[string]string{"error": err.Error()})
			return
		}
		defer w.Close()
		for msg := range w.Messages() {
			if err := websocket.JSON.Send(ws, msg); err != nil {
				return
			}
		}
	})
}
