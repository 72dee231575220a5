// internal/entity/registry.go
package entity

import "go-arena-survivor/internal/component"

// Registry владеет всеми живыми коллекциями сущностей забега.
// Стены и враги удаляются с сохранением порядка (первое совпадение поглощает снаряд),
// снаряды, бонусы и частицы — перестановкой с последним элементом.
type Registry struct {
	Enemies       []*component.Enemy
	PlayerBullets []*component.Projectile
	EnemyBullets  []*component.Projectile
	Walls         []*component.Wall
	Pickups       []*component.Pickup
	Particles     []*component.Particle
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Reset очищает все коллекции.
func (r *Registry) Reset() {
	r.Enemies = nil
	r.PlayerBullets = nil
	r.EnemyBullets = nil
	r.Walls = nil
	r.Pickups = nil
	r.Particles = nil
}

func (r *Registry) AddEnemy(e *component.Enemy) {
	r.Enemies = append(r.Enemies, e)
}

// RemoveEnemy удаляет врага по индексу, сохраняя порядок остальных.
func (r *Registry) RemoveEnemy(i int) {
	r.Enemies = orderedRemove(r.Enemies, i)
}

func (r *Registry) AddPlayerBullet(p *component.Projectile) {
	r.PlayerBullets = append(r.PlayerBullets, p)
}

func (r *Registry) RemovePlayerBullet(i int) {
	r.PlayerBullets = swapRemove(r.PlayerBullets, i)
}

func (r *Registry) AddEnemyBullet(p *component.Projectile) {
	r.EnemyBullets = append(r.EnemyBullets, p)
}

func (r *Registry) RemoveEnemyBullet(i int) {
	r.EnemyBullets = swapRemove(r.EnemyBullets, i)
}

func (r *Registry) AddWall(w *component.Wall) {
	r.Walls = append(r.Walls, w)
}

func (r *Registry) RemoveWall(i int) {
	r.Walls = orderedRemove(r.Walls, i)
}

// ClearWalls убирает все стены перед генерацией новых.
func (r *Registry) ClearWalls() {
	r.Walls = nil
}

func (r *Registry) AddPickup(p *component.Pickup) {
	r.Pickups = append(r.Pickups, p)
}

func (r *Registry) RemovePickup(i int) {
	r.Pickups = swapRemove(r.Pickups, i)
}

func (r *Registry) AddParticle(p *component.Particle) {
	r.Particles = append(r.Particles, p)
}

func (r *Registry) RemoveParticle(i int) {
	r.Particles = swapRemove(r.Particles, i)
}

// swapRemove переносит последний элемент на место i.
// Вызывающий цикл должен повторно обработать индекс i.
func swapRemove[T any](s []*T, i int) []*T {
	last := len(s) - 1
	s[i] = s[last]
	s[last] = nil
	return s[:last]
}

func orderedRemove[T any](s []*T, i int) []*T {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}
