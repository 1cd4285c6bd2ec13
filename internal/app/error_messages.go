// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-wide error taxonomy and the message
// strings that services and handlers attach to it.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Keeping them in one place keeps the API wording consistent.
package app

// Default messages used when an [Error] is constructed without a reason.
const (
	MsgInvalidInput        = "Invalid Input"
	MsgResourceNotFound    = "No Resource Found"
	MsgResourceConflict    = "Resource Conflict"
	MsgAuthentication      = "Invalid Credentials"
	MsgAuthorization       = "Access Denied"
	MsgInternalServerError = "Internal Server Error"
)

// Shared validation messages.
const (
	MsgValidIDNotInput       = "Valid ID was not input"
	MsgInvalidIDInput        = "Invalid ID was input"
	MsgValidStringNotInput   = "Valid string was not input"
	MsgValidObjectNotInput   = "Valid Object was not input"
	MsgSingleQueryKeyAllowed = "Exactly one query key must be provided"
	MsgInvalidJSON           = "Invalid JSON was passed"
	MsgUnknownQueryKey       = "Query key is not a property of the resource"
)

// Card messages.
const (
	MsgNoCardsFound        = "No cards found in the database."
	MsgCardIDNotFound      = "Card with that ID does not exist"
	MsgRarityNotFound      = "Rarity does not exist"
	MsgCardNameNotFound    = "Card with that name does not exist"
	MsgInvalidCardObject   = "Valid card object was not input"
	MsgInvalidCardUpdate   = "Valid Card object/ID was not input"
	MsgCardAlreadyExists   = "Card Already Exists In Database"
	MsgCardNotFoundUpdate  = "No card found to update"
	MsgCardImmutableFields = "Card name and rarity cannot be changed"
	MsgCardNotFoundDelete  = "Card does not exist or was already deleted"
)

// User messages.
const (
	MsgNoUsersFound          = "No users in database"
	MsgUserIDNotFound        = "No user with that ID found"
	MsgUsernameNotFound      = "No user found with that username"
	MsgInvalidUserUpdate     = "Valid user was not input"
	MsgUsernameAlreadyExists = "Username already exists"
	MsgEmailAlreadyInUse     = "Email already in use"
	MsgEmailAlreadyTaken     = "Email already taken"
	MsgUsernameImmutable     = "Username cannot be changed"
	MsgUserNotFoundUpdate    = "No user found to update"
	MsgUserNotFoundDelete    = "User does not exist, or was already deleted"
	MsgInvalidCredentials    = "Invalid credentials"
)

// Deck messages.
const (
	MsgNoDecksFound         = "No decks in the database"
	MsgDeckIDNotFound       = "No deck found with that ID"
	MsgDeckNameNotFound     = "Deck with that name was not found."
	MsgAuthorDecksNotFound  = "No decks found for that author"
	MsgInvalidDeckObject    = "Valid deck object was not input"
	MsgDuplicateDeckName    = "One author cannot make two decks with the same name"
	MsgDeckNameTaken        = "One of your decks already has that name"
	MsgDeckNotFoundUpdate   = "No deck found to update"
	MsgDeckNotFoundDelete   = "Deck does not exist or was already deleted"
	MsgDeckReferenceInvalid = "Deck references a card or author that does not exist"
	MsgDeckAuthorImmutable  = "Deck author cannot be changed"
)

// Transport messages.
const (
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgAccessDenied            = "access denied"
)
