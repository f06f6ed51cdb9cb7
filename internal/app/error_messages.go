// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the service
// layer, the terminal UI and the CLI.
//
// Keeping them in one place ensures consistent wording on every surface.
// Messages ending in "Fmt" take the HTTP status code as their only argument.
package app

const (
	// MsgUnauthorized is shown for any 401: the token is missing or expired.
	MsgUnauthorized = "Необходима авторизация. Пожалуйста, войдите в систему."

	// MsgForbiddenDelete is shown when deleting a record the user does not own.
	MsgForbiddenDelete = "У вас нет прав для удаления этого кота"

	// MsgForbidden is shown for a 403 on any other operation.
	MsgForbidden = "Недостаточно прав для этой операции"

	// MsgNotFound is shown when the record no longer exists.
	MsgNotFound = "Кот не найден"

	// MsgNetwork is shown when the service could not be reached at all.
	MsgNetwork = "Не удалось связаться с сервером"

	MsgLoadFailedFmt   = "Не удалось загрузить данные кота (код ошибки: %d)"
	MsgLoadFailed      = "Не удалось загрузить данные кота"
	MsgDeleteFailedFmt = "Не удалось удалить кота (код ошибки: %d)"
	MsgDeleteFailed    = "Не удалось удалить кота"
	MsgCreateFailed    = "Не удалось добавить кота"
	MsgUpdateFailed    = "Не удалось обновить кота"
	MsgListFailed      = "Не удалось загрузить список котов"
	MsgSignInFailed    = "Не удалось войти"
	MsgSignUpFailed    = "Не удалось зарегистрироваться"
	MsgRequestFailed   = "Не удалось выполнить запрос"

	// MsgOfflineCatalog accompanies the placeholder catalog.
	MsgOfflineCatalog = "Не удалось загрузить данные с сервера. Показаны тестовые данные."

	// MsgSignInHint is printed by protected CLI commands for anonymous users.
	MsgSignInHint = "войдите: kittygram login"

	// MsgDeleteConfirm asks for explicit confirmation before deleting.
	MsgDeleteConfirm = "Вы уверены, что хотите удалить этого кота?"
)
