// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the scheduling backend.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as tenant checking, request tracing, and
// access logging are handled in this package before requests are delegated to
// the service layer. Error responses carry a JSON body of the form
// {"detail": "..."} so that clients can surface a human-readable message.
package http
