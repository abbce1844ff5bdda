package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/core"

// advanceBall moves the ball one tick and resolves every collision in order:
// walls, paddle, bricks, level clear, power-ups, bottom edge.
func (s *Session) advanceBall() {
	s.ball.X += s.ball.VX
	s.ball.Y += s.ball.VY

	s.collideWalls()
	s.collidePaddle()
	s.collideBricks()
	if s.bricksDestroyed >= s.cfg.Bricks.Total() {
		s.levelUp()
	}
	s.collidePowerUps()

	if s.ball.Bottom() >= s.cfg.Field.Height {
		s.gameOver()
	}
}

// collideWalls reflects off the side and top walls. A component only flips
// while the ball still moves toward the wall it touches.
func (s *Session) collideWalls() {
	b := &s.ball
	if (b.Left() <= 0 && b.VX < 0) || (b.Right() >= s.cfg.Field.Width && b.VX > 0) {
		b.VX = -b.VX
	}
	if b.Top() <= 0 && b.VY < 0 {
		b.VY = -b.VY
	}
}

// collidePaddle bounces a descending ball whose bottom has reached the
// paddle's top edge while its centre is over the paddle. The ball is put
// back on the paddle so a fast ball cannot end up past the bottom edge.
func (s *Session) collidePaddle() {
	b := &s.ball
	if b.VY <= 0 || b.Bottom() < s.paddle.Y || !s.paddle.Spans(b.X) {
		return
	}
	b.Y = s.paddle.Y - b.Radius
	b.VY = -b.VY
	s.sounds.Play(core.SoundPaddleHit)
	s.emit(EventPaddleHit)
}

func (s *Session) brickRect(br Brick) core.Rect {
	return core.NewRect(br.X, br.Y, float64(s.cfg.Bricks.Width), float64(s.cfg.Bricks.Height))
}

// collideBricks destroys every intact brick the ball overlaps. The vertical
// velocity flips once per tick no matter how many bricks were hit.
func (s *Session) collideBricks() {
	ball := s.ball.Rect()
	hit := false
	for i := range s.bricks {
		br := &s.bricks[i]
		if br.Destroyed {
			continue
		}
		r := s.brickRect(*br)
		if !ball.Overlaps(r) {
			continue
		}

		br.Destroyed = true
		hit = true
		s.score += s.cfg.Bricks.Points
		s.bricksDestroyed++
		s.sounds.Play(core.SoundBrickBreak)
		s.emit(EventBrickBreak)

		cx := br.X + float64(s.cfg.Bricks.Width/2)
		cy := br.Y + float64(s.cfg.Bricks.Height/2)
		if p, ok := s.spawner.TrySpawn(cx, cy); ok {
			s.powerUps = append(s.powerUps, p)
			s.emit(EventPowerUpSpawned)
		}
	}
	if hit {
		s.ball.VY = -s.ball.VY
	}
}

// collidePowerUps applies and deactivates every active power-up the ball
// overlaps.
func (s *Session) collidePowerUps() {
	ball := s.ball.Rect()
	for i := range s.powerUps {
		p := &s.powerUps[i]
		if !p.Active || !ball.Overlaps(s.powerUpRect(*p)) {
			continue
		}
		p.Active = false
		s.applyPowerUp(p.Type)
		s.emit(EventPowerUpCollected)
	}
}

// movePaddle shifts the paddle by its speed, clamped to the field.
func (s *Session) movePaddle(in InputState) {
	p := &s.paddle
	if in.Left {
		p.X = max(p.X-p.Speed, 0)
	}
	if in.Right {
		p.X = min(p.X+p.Speed, s.cfg.Field.Width-p.Width)
	}
}
