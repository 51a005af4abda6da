package domain

var defaultEntries = map[Category][]string{
	CategoryWorkQuotes: {
		"Focus is the new superpower.",
		"Small steps lead to big results.",
		"Deep work, deep rewards.",
		"You're building something great.",
		"Stay in the zone.",
		"Progress over perfection.",
		"One task at a time.",
		"Your future self will thank you.",
		"Distractions can wait.",
		"You're in the flow.",
		"Quality time, quality work.",
		"Make this session count.",
	},
	CategoryBreakQuotes: {
		"Stretch those muscles!",
		"Hydrate yourself.",
		"Rest your eyes, look away.",
		"Take a deep breath.",
		"You've earned this break.",
		"Movement is medicine.",
		"Clear your mind.",
		"Relax and recharge.",
	},
	CategoryStretches: {
		"🙆 Neck rolls: slowly roll your head in circles, 5 times each direction.",
		"💪 Shoulder shrugs: raise shoulders to ears, hold 5 sec, release. Repeat 5x.",
		"🖐 Wrist circles: rotate your wrists slowly, 10 times each direction.",
		"👀 Eye exercise: look at something 20 feet away for 20 seconds.",
		"🧘 Seated twist: twist your torso left, hold 15 sec. Repeat on the right.",
		"🦵 Leg stretch: extend one leg, reach for your toes. Hold 15 sec each.",
		"🤲 Finger stretches: spread fingers wide, hold 5 sec, make fists. Repeat 5x.",
		"🏃 Stand up and walk around for a minute to get blood flowing.",
		"😤 Deep breathing: inhale 4 sec, hold 4 sec, exhale 4 sec. Repeat 5x.",
		"🙂 Face relaxation: scrunch your face tight, then relax. Repeat 3x.",
	},
	CategoryFunFacts: {
		"🍅 The Pomodoro Technique was invented by Francesco Cirillo in the late 1980s.",
		"🧠 Your brain can focus intensely for about 90-120 minutes before it needs rest.",
		"☕ Coffee takes about 20 minutes to kick in, so time it with your break.",
		"🌊 The human brain is about 75% water. Stay hydrated!",
		"😴 A 20-minute power nap can boost alertness and performance.",
		"🎵 Music without lyrics can improve focus for many people.",
		"🌿 Plants nearby can increase productivity by up to 15%.",
		"💡 Thomas Edison took regular naps to boost his creativity.",
		"🚶 Walking increases creative thinking by up to 60%.",
		"🌅 Most people are most productive in the late morning.",
	},
}
