package openai

// intentSystemPrompt instructs the model to extract hiring constraints and
// intent as structured JSON. The domain_mix object is mandatory; responses
// without it are rejected and the caller falls back to the heuristic extractor.
const intentSystemPrompt = `You are an information extraction system.
Given a hiring query or job description, extract constraints and intent.

Output ONLY valid JSON which complies with the schema below. Do not include any
preamble, explanation, greeting, or acknowledgment. Start your response directly
with the opening brace { and end with the closing brace }.

{
  "hard_skills": [string],
  "soft_skills": [string],
  "roles": [string],
  "seniority": "intern|junior|mid|senior|lead|unknown",
  "duration_limit_minutes": integer|null,
  "remote_required": true|false|null,
  "domain_mix": {
     "K": float,
     "P": float
  }
}

Rules:
- "K" weighs Knowledge & Skills assessments, "P" weighs Personality & Behavior assessments.
- If the query includes both technical and collaboration/communication/stakeholder/teamwork
  requirements, set K and P both > 0 with a balanced mix.
- If the query is purely technical, set K high and P low but not zero.
- If a duration or time limit is mentioned, extract it as whole minutes.
- Set remote_required only when the query explicitly demands or rules out remote testing;
  otherwise use null.
- The JSON must parse without errors; no trailing commas, no extra keys, and no
  extraneous text outside the object.`

// judgePromptTemplate asks for a relevance score per candidate assessment.
// Filled with the (truncated) query and the candidate JSON array.
const judgePromptTemplate = `You are a hiring assessment expert. Given a job requirement and a list of
candidate assessments, score each assessment by relevance.

JOB REQUIREMENT:
%s

CANDIDATE ASSESSMENTS:
%s

For each assessment, assign a relevance_score between 0.0 and 1.0 based on how
well it matches the job requirement. Consider skill match, difficulty level and
assessment type (technical vs behavioral).

Return ONLY a valid JSON object of this exact shape:
{
  "scores": [
    {"name": "Assessment Name", "relevance_score": 0.95},
    {"name": "Assessment Name", "relevance_score": 0.82}
  ]
}`
