// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client fetches rendered configuration for a deployed application.
//
// A [ConfigFetcher] asks the configuration service first and, when the
// service cannot be reached or fails, renders a local default document with
// a local parameter document using the same templating rules as the server.
// [App] is the command-line runtime built on top of it.
package client
