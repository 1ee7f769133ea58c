// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// AuthServiceWrapper, PostServiceWrapper and ProfileServiceWrapper define
// middleware composition for the services. Implementations wrap an existing
// service to add behavior such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
