// Package models defines the CodeShack resources exchanged with the REST API:
// users, doubts, answers, comments, junior space posts and admin actions.
package models
