// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the NTS client run.
//
// [App] sequences the two protocol phases through an
// [adapter.ServerAdapter]: key establishment first, then time
// synchronization with the state it produced. It maps each failure to its
// own exit code and prints the report on success.
package client
