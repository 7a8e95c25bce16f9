// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package resource

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	currentUserPath = "/user/me"
	userPath        = "/user/{id}"
)

// Users resolves user records.
type Users struct {
	r Requester
}

// NewUsers returns a Users client.
func NewUsers(r Requester) *Users {
	return &Users{r: r}
}

// CurrentUserID returns the id of the authenticated user. A response without
// an _id yields an empty string and a warning.
func (u *Users) CurrentUserID(ctx context.Context) (string, error) {
	var me *User
	if err := u.r.Get(ctx, currentUserPath, nil, &me); err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	if me == nil || me.ID == "" {
		slog.Warn("user id not found")
		return "", nil
	}
	return me.ID, nil
}

// Login returns the login name of the user with the given id. A response
// without a login yields an empty string and a warning.
func (u *Users) Login(ctx context.Context, id string) (string, error) {
	path, err := expandID(userPath, id)
	if err != nil {
		return "", err
	}

	var user *User
	if err := u.r.Get(ctx, path, nil, &user); err != nil {
		return "", fmt.Errorf("failed to get user %s: %w", id, err)
	}
	if user == nil || user.Login == "" {
		slog.Warn("user login name not found", "userId", id)
		return "", nil
	}
	return user.Login, nil
}
