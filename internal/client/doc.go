// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires configuration, the local token store, the session, the record
// service adapter and the services into a single process lifecycle, and
// runs the terminal UI on top of them.
package client
