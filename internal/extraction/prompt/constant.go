package prompt

// MaxContentChars is the character budget for page content embedded in a
// prompt. Longer content is cut silently to stay under provider token
// ceilings; the budget is the same for every mode.
const MaxContentChars = 15000

// TruncationMarker is appended to content that was cut at MaxContentChars.
const TruncationMarker = "\n...[content truncated]"

// generalInstructions is the template header for the general extraction mode.
const generalInstructions = `You are a task extraction assistant. Your job is to read page content and extract every actionable task it contains.

For each task, identify:
- title: Short imperative phrasing of the task (required)
- description: Additional details (can be empty string)
- priority: MUST be exactly one of: "high", "medium", "low"
- category: MUST be exactly one of: "action", "follow-up", "decision", "deadline", "question", "idea", "other"
- assignee: The person or role responsible, if the text names one
- dueDate: Calendar date in YYYY-MM-DD format, only when the text states or clearly implies one
- context: A short verbatim snippet of the source text that justifies the task
- confidence: Your certainty that this is a real actionable task (see the scoring rubric below)
- subTasks: An array of {"title": "..."} steps, only when the task clearly decomposes into steps
- recurring: Only when the text describes a repeating obligation (see the schema below)
- timeEstimate: Only when you can bucket the effort (see the duration rubric below)`

// emailInstructions extends the general header with sender and assignee
// heuristics for email content.
const emailInstructions = generalInstructions + `
- sender: The person who wrote the email, when identifiable from a signature, sign-off, or header

EMAIL HEURISTICS:
1. Requests phrased as "please", "could you", "can you" are tasks assigned to the recipient.
2. Commitments phrased as "I will", "I'll take care of" are tasks assigned to the sender.
3. A sign-off name (e.g. "Thanks, John" or "— John") identifies the sender; attach it to tasks the sender committed to.
4. Dates like "by Friday" or "end of week" usually mean category "deadline".`

// meetingInstructions extends the general header with attendee and decision
// heuristics for meeting notes and transcripts.
const meetingInstructions = generalInstructions + `
- attendees: The meeting participants, when the notes list or name them

MEETING HEURISTICS:
1. "X will ..." or "X to ..." assigns the task to attendee X.
2. "We decided", "agreed to", "conclusion:" mark category "decision".
3. Open items phrased as questions keep category "question".
4. Action-item lists and "next steps" sections are the richest source of tasks; extract every entry.`

// confidenceRubric anchors the five confidence bands.
const confidenceRubric = `CONFIDENCE SCORING:
- 0.9-1.0: Explicit task with a clear owner or deadline ("Send the report by Friday")
- 0.7-0.9: Clear actionable statement without full details
- 0.5-0.7: Implied task that a reasonable reader would act on
- 0.3-0.5: Possible task, heavily dependent on context
- 0.0-0.3: Speculative; include only when the content is otherwise empty of tasks`

// timeEstimateRubric anchors the eight duration buckets.
const timeEstimateRubric = `TIME ESTIMATES (use exactly one of these tokens, or omit the field):
- "15min": trivial work, a quick reply or confirmation
- "30min": short focused work
- "1h": a standard work block
- "2h": half a morning of focused work
- "4h": roughly half a working day
- "1d": one full working day
- "2d": two working days
- "1w": a week-scale effort`

// responseFormat is the closed output schema. It is always the final block
// of the prompt: trailing instructions have the most influence and the
// format constraint must never be buried under custom rules.
const responseFormat = `Respond with ONLY a valid JSON object in exactly this format. No markdown, no code fences, no explanation text:
{
  "tasks": [
    {
      "title": "string (required)",
      "description": "string",
      "priority": "high|medium|low",
      "category": "action|follow-up|decision|deadline|question|idea|other",
      "assignee": "string (optional)",
      "dueDate": "YYYY-MM-DD (optional)",
      "context": "string (optional)",
      "confidence": 0.0,
      "subTasks": [{"title": "string"}],
      "recurring": {
        "frequency": "daily|weekly|biweekly|monthly|quarterly|yearly",
        "description": "string",
        "dayOfWeek": 0,
        "dayOfMonth": 1
      },
      "timeEstimate": "15min|30min|1h|2h|4h|1d|2d|1w",
      "sender": "string (email mode only)",
      "attendees": ["string (meeting mode only)"]
    }
  ]
}
Omit optional fields entirely when they do not apply. Return {"tasks": []} when the content has no actionable tasks.`

// rulesHeader introduces the user-defined rules block.
const rulesHeader = "CUSTOM EXTRACTION RULES (apply these to the content above):"
