// Package storage groups the CourseStore adapters. Each driver lives in its
// own subpackage (memory, sqlite, mysql) and passes the shared behavioral
// suite in storetest.
package storage
