// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the smoke client runtime.
//
// It drives a running server through [adapter.APIAdapter] and checks every
// public route against its documented behaviour.
package client
